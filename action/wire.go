package action

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/purbtool/purb/cryptoblob"
	"github.com/purbtool/purb/embed"
	atomicfile "github.com/purbtool/purb/ioutil/atomic"
	"github.com/purbtool/purb/randomfill"
)

// NewDefaultDispatcher builds a Dispatcher wired to the concrete
// cryptoblob, embed, and randomfill pipelines, opening and closing the
// operator-named files for each request. Every Kind except KindExit, which
// the menu loop handles itself, has an explicit, typed handler.
func NewDefaultDispatcher() *Dispatcher {
	d := NewDispatcher()
	d.Register(KindInfo, handleInfo)
	d.Register(KindEncrypt, handleEncrypt)
	d.Register(KindDecrypt, handleDecrypt)
	d.Register(KindEmbed, handleEmbed)
	d.Register(KindExtract, handleExtract)
	d.Register(KindEncryptAndEmbed, handleEncryptAndEmbed)
	d.Register(KindExtractAndDecrypt, handleExtractAndDecrypt)
	d.Register(KindRandomCreate, handleRandomCreate)
	d.Register(KindRandomOverwrite, handleRandomOverwrite)
	return d
}

func handleInfo(ctx context.Context, req Request) (Result, error) {
	return Result{Messages: []string{
		"cryptoblobs carry no magic bytes or version field by design",
		"Argon2id time cost defaults to 4 unless overridden per operation",
		"--unsafe-decrypt releases unverified plaintext on MAC failure; use only for forensic recovery",
	}}, nil
}

func ikmInput(req Request) cryptoblob.IKMInput {
	return cryptoblob.IKMInput{KeyfilePaths: req.KeyfilePaths, Passphrase: req.Passphrase}
}

func handleEncrypt(ctx context.Context, req Request) (Result, error) {
	in, err := os.Open(filepath.Clean(req.InputPath))
	if err != nil {
		return Result{}, fmt.Errorf("action: unable to open input: %w", err)
	}
	defer in.Close()
	stat, err := in.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("action: unable to stat input: %w", err)
	}

	comment := req.Comment
	if comment == "" {
		comment = filepath.Base(req.InputPath)
	}

	out, err := atomicfile.CreateNew(req.OutputPath, req.Overwrite)
	if err != nil {
		return Result{}, err
	}

	res, err := cryptoblob.Encrypt(ctx, cryptoblob.EncryptRequest{
		Input:     in,
		InputSize: uint64(stat.Size()),
		Output:    out,
		Comment:   comment,
		IKM:       ikmInput(req),
		TimeCost:  req.TimeCost,
	})
	if err != nil {
		return Result{}, finishOutput(out, err, req.RemoveOnAbort)
	}
	if err := atomicfile.Finalize(out); err != nil {
		return Result{}, err
	}
	return Result{Warning: res.Warning}, nil
}

func handleDecrypt(ctx context.Context, req Request) (Result, error) {
	in, err := os.Open(filepath.Clean(req.InputPath))
	if err != nil {
		return Result{}, fmt.Errorf("action: unable to open input: %w", err)
	}
	defer in.Close()
	stat, err := in.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("action: unable to stat input: %w", err)
	}

	out, err := atomicfile.CreateNew(req.OutputPath, req.Overwrite)
	if err != nil {
		return Result{}, err
	}

	res, err := cryptoblob.Decrypt(ctx, cryptoblob.DecryptRequest{
		Input:         in,
		PaddedSize:    uint64(stat.Size()),
		Output:        out,
		IKM:           ikmInput(req),
		TimeCost:      req.TimeCost,
		UnsafeDecrypt: req.UnsafeDecrypt,
	})
	if err != nil {
		return Result{}, finishOutput(out, err, req.RemoveOnAbort)
	}
	if err := atomicfile.Finalize(out); err != nil {
		return Result{}, err
	}
	return Result{Comment: res.Comment, Warning: res.Warning}, nil
}

func handleEmbed(ctx context.Context, req Request) (Result, error) {
	container, err := os.OpenFile(filepath.Clean(req.OutputPath), os.O_RDWR, 0o600)
	if err != nil {
		return Result{}, fmt.Errorf("action: unable to open container: %w", err)
	}
	defer container.Close()

	in, err := os.Open(filepath.Clean(req.InputPath))
	if err != nil {
		return Result{}, fmt.Errorf("action: unable to open input: %w", err)
	}
	defer in.Close()
	stat, err := in.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("action: unable to stat input: %w", err)
	}

	_, err = embed.Embed(ctx, embed.EmbedRequest{
		Container: container,
		StartPos:  req.StartPos,
		Input:     in,
		InputSize: uint64(stat.Size()),
	})
	if err != nil {
		return Result{}, err
	}
	return Result{}, nil
}

func handleExtract(ctx context.Context, req Request) (Result, error) {
	container, err := os.Open(filepath.Clean(req.InputPath))
	if err != nil {
		return Result{}, fmt.Errorf("action: unable to open container: %w", err)
	}
	defer container.Close()

	out, err := atomicfile.CreateNew(req.OutputPath, req.Overwrite)
	if err != nil {
		return Result{}, err
	}

	_, err = embed.Extract(ctx, embed.ExtractRequest{
		Container: container,
		StartPos:  req.StartPos,
		EndPos:    req.EndPos,
		Output:    out,
	})
	if err != nil {
		return Result{}, finishOutput(out, err, req.RemoveOnAbort)
	}
	if err := atomicfile.Finalize(out); err != nil {
		return Result{}, err
	}
	return Result{}, nil
}

func handleEncryptAndEmbed(ctx context.Context, req Request) (Result, error) {
	container, err := os.OpenFile(filepath.Clean(req.OutputPath), os.O_RDWR, 0o600)
	if err != nil {
		return Result{}, fmt.Errorf("action: unable to open container: %w", err)
	}
	defer container.Close()

	in, err := os.Open(filepath.Clean(req.InputPath))
	if err != nil {
		return Result{}, fmt.Errorf("action: unable to open input: %w", err)
	}
	defer in.Close()
	stat, err := in.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("action: unable to stat input: %w", err)
	}

	comment := req.Comment
	if comment == "" {
		comment = filepath.Base(req.InputPath)
	}

	offsetOut := io.NewOffsetWriter(container, int64(req.StartPos))
	res, err := cryptoblob.Encrypt(ctx, cryptoblob.EncryptRequest{
		Input:     in,
		InputSize: uint64(stat.Size()),
		Output:    offsetOut,
		Comment:   comment,
		IKM:       ikmInput(req),
		TimeCost:  req.TimeCost,
	})
	if err != nil {
		return Result{}, err
	}
	if err := container.Sync(); err != nil {
		return Result{}, fmt.Errorf("action: unable to sync container: %w", err)
	}
	return Result{Warning: res.Warning}, nil
}

func handleExtractAndDecrypt(ctx context.Context, req Request) (Result, error) {
	container, err := os.Open(filepath.Clean(req.InputPath))
	if err != nil {
		return Result{}, fmt.Errorf("action: unable to open container: %w", err)
	}
	defer container.Close()

	if req.EndPos < req.StartPos {
		return Result{}, fmt.Errorf("action: end position %d precedes start position %d", req.EndPos, req.StartPos)
	}
	section := io.NewSectionReader(container, int64(req.StartPos), int64(req.EndPos-req.StartPos))

	out, err := atomicfile.CreateNew(req.OutputPath, req.Overwrite)
	if err != nil {
		return Result{}, err
	}

	res, err := cryptoblob.Decrypt(ctx, cryptoblob.DecryptRequest{
		Input:         section,
		PaddedSize:    req.EndPos - req.StartPos,
		Output:        out,
		IKM:           ikmInput(req),
		TimeCost:      req.TimeCost,
		UnsafeDecrypt: req.UnsafeDecrypt,
	})
	if err != nil {
		return Result{}, finishOutput(out, err, req.RemoveOnAbort)
	}
	if err := atomicfile.Finalize(out); err != nil {
		return Result{}, err
	}
	return Result{Comment: res.Comment, Warning: res.Warning}, nil
}

func handleRandomCreate(ctx context.Context, req Request) (Result, error) {
	out, err := atomicfile.CreateNew(req.OutputPath, req.Overwrite)
	if err != nil {
		return Result{}, err
	}
	if err := randomfill.Create(ctx, out, req.Size, nil); err != nil {
		return Result{}, finishOutput(out, err, req.RemoveOnAbort)
	}
	if err := atomicfile.Finalize(out); err != nil {
		return Result{}, err
	}
	return Result{}, nil
}

func handleRandomOverwrite(ctx context.Context, req Request) (Result, error) {
	f, err := os.OpenFile(filepath.Clean(req.OutputPath), os.O_RDWR, 0o600)
	if err != nil {
		return Result{}, fmt.Errorf("action: unable to open target: %w", err)
	}
	defer f.Close()

	if err := randomfill.Overwrite(ctx, f, req.StartPos, req.EndPos, nil); err != nil {
		return Result{}, err
	}
	if err := f.Sync(); err != nil {
		return Result{}, fmt.Errorf("action: unable to sync target: %w", err)
	}
	return Result{}, nil
}

// finishOutput aborts a partially written output file after a pipeline
// error, preserving the original error as the returned one.
func finishOutput(out *os.File, cause error, remove bool) error {
	if abortErr := atomicfile.Abort(out, remove); abortErr != nil {
		return fmt.Errorf("%w (cleanup also failed: %v)", cause, abortErr)
	}
	return cause
}
