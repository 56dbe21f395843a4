package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"gocp/internal/pattern"
	"gocp/internal/transfer"
	"gocp/internal/ui"
)

const menuText = `
  gocp — file/folder copy utility

  BASIC OPERATIONS
  [1]  Copy a file
  [2]  Copy a directory (recursive)
  [3]  Move a file
  [4]  Move a directory

  ADVANCED OPERATIONS
  [5]  Copy with pattern filter
  [6]  Compare two files
  [7]  Calculate file digest
  [8]  Verify file digest

  INFORMATION & NAVIGATION
  [9]  Check if a path exists
  [10] Show path information
  [11] Browse the filesystem
  [12] List directory contents

  [0]  Exit
`

// promptLine reads one line of input after printing a prompt.
func (a *App) promptLine(prompt string) (string, error) {
	fmt.Print(prompt)

	line, err := a.stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// reportOutcome prints an operation result with its caller-supplied context.
func reportOutcome(context string, err error) {
	switch {
	case err == nil:
		fmt.Printf("OK: %s\n", context)
	case errors.Is(err, transfer.ErrFilesDiffer):
		fmt.Printf("%s: files are different\n", context)
	default:
		fmt.Printf("Error (%s): %v\n", context, err)
	}
}

// RunMenu drives the interactive numbered menu until exit or EOF.
func (a *App) RunMenu(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Print(menuText)

		choice, err := a.promptLine("\nEnter your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		selection, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Println("Invalid choice, please try again.")

			continue
		}

		switch selection {
		case 0:
			return nil
		case 1:
			a.handleCopyFile(ctx)
		case 2:
			a.handleCopyDirectory(ctx)
		case 3:
			a.handleMoveFile(ctx)
		case 4:
			a.handleMoveDirectory(ctx)
		case 5:
			a.handleFilteredCopy(ctx)
		case 6:
			a.handleCompare(ctx)
		case 7:
			a.handleDigest(ctx)
		case 8:
			a.handleVerify(ctx)
		case 9:
			a.handlePathCheck()
		case 10:
			a.handlePathInfo()
		case 11:
			a.handleBrowse(ctx)
		case 12:
			a.handleListDirectory()
		default:
			fmt.Println("Invalid choice, please try again.")
		}
	}
}

// progressPrinter renders per-chunk copy progress on a single line.
func progressPrinter(copied int64, total int64, name string) {
	if total <= 0 {
		fmt.Printf("\rCopying: %s (%s)", name, humanize.Bytes(uint64(copied)))

		return
	}

	percent := copied * 100 / total
	fmt.Printf("\rCopying: %s %d%% (%s of %s)",
		name, percent, humanize.Bytes(uint64(copied)), humanize.Bytes(uint64(total)))
}

func (a *App) handleCopyFile(ctx context.Context) {
	src, err := a.promptLine("  Source file path: ")
	if err != nil {
		return
	}

	if !a.fsHandler.Exists(src) {
		fmt.Println("Source file does not exist.")

		return
	}
	if a.fsHandler.IsDirectory(src) {
		fmt.Println("Source is a directory, use the directory copy instead.")

		return
	}

	dst, err := a.promptLine("  Destination path (file or folder): ")
	if err != nil {
		return
	}

	err = a.transferHandler.CopyFile(ctx, src, dst, progressPrinter)
	fmt.Println()
	reportOutcome("file copy", err)
}

func (a *App) handleCopyDirectory(ctx context.Context) {
	src, err := a.promptLine("  Source directory path: ")
	if err != nil {
		return
	}

	if !a.fsHandler.IsDirectory(src) {
		fmt.Println("Source is not an existing directory.")

		return
	}

	dst, err := a.promptLine("  Destination directory path: ")
	if err != nil {
		return
	}

	stats := transfer.NewStats()
	err = a.transferHandler.CopyTree(ctx, src, dst, nil, stats, progressPrinter)
	fmt.Println()
	reportOutcome("directory copy", err)

	if err == nil {
		printStats(stats)
	}
}

func (a *App) handleMoveFile(ctx context.Context) {
	src, err := a.promptLine("  Source file path: ")
	if err != nil {
		return
	}

	if !a.fsHandler.Exists(src) {
		fmt.Println("Source file does not exist.")

		return
	}
	if a.fsHandler.IsDirectory(src) {
		fmt.Println("Source is a directory, use the directory move instead.")

		return
	}

	dst, err := a.promptLine("  Destination file path: ")
	if err != nil {
		return
	}

	reportOutcome("file move", a.transferHandler.MoveFile(ctx, src, dst))
}

func (a *App) handleMoveDirectory(ctx context.Context) {
	src, err := a.promptLine("  Source directory path: ")
	if err != nil {
		return
	}

	if !a.fsHandler.IsDirectory(src) {
		fmt.Println("Source is not an existing directory.")

		return
	}

	dst, err := a.promptLine("  Destination directory path: ")
	if err != nil {
		return
	}

	reportOutcome("directory move", a.transferHandler.MoveDirectory(ctx, src, dst))
}

func (a *App) handleFilteredCopy(ctx context.Context) {
	src, err := a.promptLine("  Source directory path: ")
	if err != nil {
		return
	}

	if !a.fsHandler.Exists(src) {
		fmt.Println("Source path does not exist.")

		return
	}

	dst, err := a.promptLine("  Destination directory path: ")
	if err != nil {
		return
	}

	includeInput, err := a.promptLine("  Include patterns (comma-separated, e.g. *.txt,*.pdf): ")
	if err != nil {
		return
	}

	excludeInput, err := a.promptLine("  Exclude patterns (comma-separated, e.g. *.tmp,*.log): ")
	if err != nil {
		return
	}

	patterns := pattern.NewSet(
		pattern.ParseList(includeInput),
		pattern.ParseList(excludeInput),
	)

	stats := transfer.NewStats()

	if a.fsHandler.IsDirectory(src) {
		err = a.transferHandler.CopyTree(ctx, src, dst, patterns, stats, progressPrinter)
	} else if patterns.ShouldInclude(filepath.Base(src)) {
		err = a.transferHandler.CopyFile(ctx, src, dst, progressPrinter)
		if err == nil {
			if size, sizeErr := a.fsHandler.Size(src); sizeErr == nil {
				stats.AddFile(size)
			}
		}
	}

	fmt.Println()
	reportOutcome("filtered copy", err)

	if err == nil {
		printStats(stats)
	}
}

func (a *App) handleCompare(ctx context.Context) {
	first, err := a.promptLine("  First file path: ")
	if err != nil {
		return
	}

	second, err := a.promptLine("  Second file path: ")
	if err != nil {
		return
	}

	err = a.transferHandler.Compare(ctx, first, second)
	if err == nil {
		fmt.Println("Files are identical.")

		return
	}

	reportOutcome("comparison", err)
}

func (a *App) handleDigest(ctx context.Context) {
	path, err := a.promptLine("  File path: ")
	if err != nil {
		return
	}

	digest, err := a.transferHandler.Digest(ctx, path)
	if err != nil {
		reportOutcome("digest", err)

		return
	}

	fmt.Printf("Digest: %s\n", digest)
}

func (a *App) handleVerify(ctx context.Context) {
	path, err := a.promptLine("  File path: ")
	if err != nil {
		return
	}

	expected, err := a.promptLine("  Expected digest: ")
	if err != nil {
		return
	}

	err = a.transferHandler.Verify(ctx, path, expected)
	if err == nil {
		fmt.Println("Digest verified, file content is intact.")

		return
	}

	reportOutcome("verification", err)
}

func (a *App) handlePathCheck() {
	path, err := a.promptLine("  Path to check: ")
	if err != nil {
		return
	}

	if !a.fsHandler.Exists(path) {
		fmt.Printf("Path does not exist: %s\n", path)

		return
	}

	kind := "file"
	if a.fsHandler.IsDirectory(path) {
		kind = "directory"
	}
	fmt.Printf("Path exists: %s (%s)\n", path, kind)
}

func (a *App) handlePathInfo() {
	path, err := a.promptLine("  Path: ")
	if err != nil {
		return
	}

	metadata, err := a.fsHandler.Metadata(path)
	if err != nil {
		reportOutcome("path information", err)

		return
	}

	kind := "file"
	switch {
	case metadata.IsDir:
		kind = "directory"
	case metadata.IsSymlink:
		kind = "symlink -> " + metadata.SymlinkTo
	}

	fmt.Printf("  Path:          %s\n", path)
	fmt.Printf("  Type:          %s\n", kind)
	if metadata.IsRegular {
		fmt.Printf("  Size:          %d bytes (%s)\n", metadata.Size, humanize.Bytes(uint64(metadata.Size)))
	}
	fmt.Printf("  Permissions:   %s\n", ui.PermString(metadata))
	fmt.Printf("  Last modified: %s\n", ui.TimeString(metadata))
}

func (a *App) handleBrowse(ctx context.Context) {
	startDir, err := a.promptLine("  Starting path (empty for current directory): ")
	if err != nil {
		return
	}

	if startDir == "" {
		startDir = a.settings.StartDir
	}
	if startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startDir = wd
		} else {
			startDir = "/"
		}
	}

	if !a.fsHandler.IsDirectory(startDir) {
		fmt.Println("Path is not an existing directory.")

		return
	}

	browser := ui.NewHandler(ctx, a.fsHandler, startDir)
	if err := browser.Launch(); err != nil {
		reportOutcome("browser", err)
	}
}

func (a *App) handleListDirectory() {
	path, err := a.promptLine("  Directory path: ")
	if err != nil {
		return
	}

	entries, err := a.fsHandler.Entries(path)
	if err != nil {
		reportOutcome("directory listing", err)

		return
	}

	fmt.Printf("\n%-10s %10s %-17s %s\n", "Perms", "Size", "Modified", "Name")
	for _, entry := range entries {
		fmt.Printf("%-10s %10s %-17s %s\n",
			ui.PermString(entry.Metadata),
			ui.SizeString(entry.Metadata),
			ui.TimeString(entry.Metadata),
			entry.Name,
		)
	}
	fmt.Printf("Total: %d items\n", len(entries))
}

// printStats renders a copy statistics summary.
func printStats(stats *transfer.Stats) {
	fmt.Printf("\n  Files copied:   %d\n", stats.Files)
	fmt.Printf("  Directories:    %d\n", stats.Dirs)
	fmt.Printf("  Total bytes:    %d (%s)\n", stats.TotalBytes, humanize.Bytes(uint64(stats.TotalBytes)))
	fmt.Printf("  Time elapsed:   %s\n", ui.DurationString(stats.Elapsed()))
	fmt.Printf("  Transfer speed: %s\n", ui.SpeedString(stats.Speed()))
}
