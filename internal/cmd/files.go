package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aura-ide/aura/internal/logging"
)

// CatCmd prints a remote file
type CatCmd struct {
	Path string `arg:"" help:"Path of the file, relative to the project root"`
}

// Run executes the cat command
func (c *CatCmd) Run(cli *CLI) error {
	content, err := cli.Container.RemoteService.ReadFile(context.Background(), c.Path)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, content)
	return nil
}

// PutCmd writes a remote file
type PutCmd struct {
	File string `help:"Local file to upload (reads stdin when omitted)" short:"f" type:"existingfile"`
	Path string `arg:"" help:"Path of the file, relative to the project root"`
}

// Run executes the put command
func (p *PutCmd) Run(cli *CLI) error {
	content, err := p.readContent(os.Stdin)
	if err != nil {
		return err
	}

	if err := cli.Container.RemoteService.WriteFile(context.Background(), p.Path, content); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "✔ SAVED: %s\n", p.Path)
	return nil
}

func (p *PutCmd) readContent(stdin io.Reader) (string, error) {
	if p.File != "" {
		data, err := os.ReadFile(p.File)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", p.File, err)
		}
		return string(data), nil
	}

	logging.Logger.Debug("Reading file content from stdin", "path", p.Path)
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// RmCmd deletes a remote file
type RmCmd struct {
	Path string `arg:"" help:"Path of the file, relative to the project root"`
}

// Run executes the rm command
func (r *RmCmd) Run(cli *CLI) error {
	if err := cli.Container.RemoteService.DeleteFile(context.Background(), r.Path); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "✔ DELETED: %s\n", r.Path)
	return nil
}
