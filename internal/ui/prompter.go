// Package ui declares the interactive prompting contract the menu loop
// depends on, independent of any particular terminal toolkit.
package ui

// Prompter collects the values one menu action needs from the operator,
// in a fixed order: irrelevant prompts for a given action are simply
// never called.
type Prompter interface {
	// InputPath asks for the path to read from.
	InputPath() (string, error)
	// Comment asks for the encrypt comments block, defaulting to
	// defaultValue (the input file's basename) when the operator enters
	// nothing.
	Comment(defaultValue string) (string, error)
	// OutputPath asks for the path to write to.
	OutputPath() (string, error)
	// Size asks for an output size in bytes (random-create).
	Size() (uint64, error)
	// Range asks for a start and end byte position (embed/extract/overwrite).
	Range() (start, end uint64, err error)
	// KeyfilePaths repeatedly asks for keyfile or keyfile-directory paths
	// until the operator enters an empty line.
	KeyfilePaths() ([]string, error)
	// Passphrase asks for a passphrase, entered twice, failing if the two
	// entries differ.
	Passphrase() ([]byte, error)
	// TimeCost asks for the Argon2id time cost, defaulting to 4.
	TimeCost() (uint32, error)
	// Confirm asks a Y/N question with the given default.
	Confirm(question string, defaultYes bool) (bool, error)
}
