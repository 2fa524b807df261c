// Command purb is the interactive console application for creating and
// opening PURB-style cryptoblobs.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/purbtool/purb/action"
	"github.com/purbtool/purb/internal/termapp"
	"github.com/purbtool/purb/internal/ui"
	"github.com/purbtool/purb/log"
)

var (
	unsafeDebug   bool
	unsafeDecrypt bool
)

func main() {
	root := &cobra.Command{
		Use:   "purb",
		Short: "Create and open PURB-style cryptoblobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu()
		},
	}
	root.Flags().BoolVar(&unsafeDebug, "unsafe-debug", false, "verbose debug logging, including secret material")
	root.Flags().BoolVar(&unsafeDecrypt, "unsafe-decrypt", false, "release unverified plaintext on MAC failure")

	disableCoreDumps()

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

var menuTitle = lipgloss.NewStyle().Bold(true).Render("purb")

const menuText = `0 Exit
1 Info & warnings
2 Encrypt (new output file)
3 Decrypt (new output file)
4 Embed (overwrite container range)
5 Extract (new output file)
6 Encrypt & embed (overwrite container range)
7 Extract & decrypt (new output file)
8 Create file filled with random bytes
9 Overwrite file range with random bytes`

func runMenu() error {
	logger := termapp.NewLogger(unsafeDebug)
	log.SetFactory(logger)
	prompter := termapp.NewPrompt()
	dispatcher := action.NewDefaultDispatcher()

	var actionInFlight atomic.Bool

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		action.Global.Set()
		if !actionInFlight.Load() {
			fmt.Fprintln(os.Stderr, "\ninterrupted")
			os.Exit(1)
		}
	}()

	in := bufio.NewReader(os.Stdin)
	terminatedBySignal := false

	for {
		if action.Global.IsSet() {
			terminatedBySignal = true
			break
		}

		fmt.Printf("\n%s\n%s\nChoice: ", menuTitle, menuText)
		line, err := in.ReadString('\n')
		if err != nil {
			break
		}
		choice := strings.TrimSpace(line)

		kind, ok := parseChoice(choice)
		if !ok {
			fmt.Println("unrecognized choice")
			continue
		}
		if kind == action.KindExit {
			break
		}

		actionInFlight.Store(true)
		err = runAction(ctx, dispatcher, prompter, kind)
		actionInFlight.Store(false)
		if err != nil {
			log.Error(err).Message("action failed")
		}
	}

	if terminatedBySignal {
		os.Exit(1)
	}
	return nil
}

func parseChoice(choice string) (action.Kind, bool) {
	switch choice {
	case "0":
		return action.KindExit, true
	case "1":
		return action.KindInfo, true
	case "2":
		return action.KindEncrypt, true
	case "3":
		return action.KindDecrypt, true
	case "4":
		return action.KindEmbed, true
	case "5":
		return action.KindExtract, true
	case "6":
		return action.KindEncryptAndEmbed, true
	case "7":
		return action.KindExtractAndDecrypt, true
	case "8":
		return action.KindRandomCreate, true
	case "9":
		return action.KindRandomOverwrite, true
	default:
		return 0, false
	}
}

// runAction gathers the prompts relevant to kind, skipping the rest, then
// dispatches the assembled request.
func runAction(ctx context.Context, dispatcher *action.Dispatcher, prompter ui.Prompter, kind action.Kind) error {
	req := action.Request{Kind: kind, UnsafeDecrypt: unsafeDecrypt}
	var err error

	if kind == action.KindInfo {
		res, dispatchErr := dispatcher.Dispatch(ctx, req)
		if dispatchErr != nil {
			return dispatchErr
		}
		for _, msg := range res.Messages {
			fmt.Println(msg)
		}
		return nil
	}

	needsInput := kind == action.KindEncrypt || kind == action.KindDecrypt ||
		kind == action.KindEmbed || kind == action.KindExtract ||
		kind == action.KindEncryptAndEmbed || kind == action.KindExtractAndDecrypt
	if needsInput {
		req.InputPath, err = prompter.InputPath()
		if err != nil {
			return err
		}
	}

	if kind == action.KindEncrypt || kind == action.KindEncryptAndEmbed {
		req.Comment, err = prompter.Comment(req.InputPath)
		if err != nil {
			return err
		}
	}

	req.OutputPath, err = prompter.OutputPath()
	if err != nil {
		return err
	}

	switch kind {
	case action.KindRandomCreate:
		req.Size, err = prompter.Size()
	case action.KindEmbed, action.KindExtract, action.KindEncryptAndEmbed, action.KindExtractAndDecrypt, action.KindRandomOverwrite:
		req.StartPos, req.EndPos, err = prompter.Range()
	}
	if err != nil {
		return err
	}

	needsKeying := kind == action.KindEncrypt || kind == action.KindDecrypt ||
		kind == action.KindEncryptAndEmbed || kind == action.KindExtractAndDecrypt
	if needsKeying {
		req.KeyfilePaths, err = prompter.KeyfilePaths()
		if err != nil {
			return err
		}
		req.Passphrase, err = prompter.Passphrase()
		if err != nil {
			return err
		}
		req.TimeCost, err = prompter.TimeCost()
		if err != nil {
			return err
		}
	}

	needsOverwriteConfirm := kind == action.KindEncrypt || kind == action.KindDecrypt ||
		kind == action.KindExtract || kind == action.KindExtractAndDecrypt || kind == action.KindRandomCreate
	if needsOverwriteConfirm {
		if _, statErr := os.Stat(req.OutputPath); statErr == nil {
			req.Overwrite, err = prompter.Confirm(fmt.Sprintf("%q already exists, overwrite?", req.OutputPath), false)
			if err != nil {
				return err
			}
			if !req.Overwrite {
				return action.ErrUserCancel
			}
		}
		req.RemoveOnAbort, err = prompter.Confirm("remove partial output on failure?", true)
		if err != nil {
			return err
		}
	}

	// Embed and encrypt-and-embed always write into a range of a container
	// file that must already exist, so the overwrite confirmation applies
	// unconditionally rather than only when os.Stat finds a prior file.
	needsContainerOverwriteConfirm := kind == action.KindEmbed || kind == action.KindEncryptAndEmbed
	if needsContainerOverwriteConfirm {
		req.Overwrite, err = prompter.Confirm(fmt.Sprintf("overwrite %q at the given range?", req.OutputPath), false)
		if err != nil {
			return err
		}
		if !req.Overwrite {
			return action.ErrUserCancel
		}
	}

	res, err := dispatcher.Dispatch(ctx, req)
	if err != nil {
		return err
	}
	if res.Warning {
		log.Warn().Message("operation completed with warnings")
	}
	if res.Comment != "" {
		fmt.Printf("comment: %s\n", res.Comment)
	}
	return nil
}
