package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/nickurl/internal/core/domain/alias"
	"github.com/AntonioJCosta/nickurl/internal/handlers/ui"
)

// ErrFZFNotFound indicates that the fzf binary was not found in PATH.
var ErrFZFNotFound = errors.New("fzf binary not found in PATH")

// ErrFZFCancelled indicates that the user cancelled the fzf selection (e.g., by pressing Esc or Ctrl-C).
var ErrFZFCancelled = errors.New("fzf selection cancelled by user")

// lookFZF is a package-level var to allow test injection.
var lookFZF = func() (string, error) { return exec.LookPath("fzf") }

// recordLine is the line fed to fzf and used to map selections back.
func recordLine(r alias.Record) string {
	return fmt.Sprintf("%s => %s", r.Alias, r.Pattern)
}

func selectRecordsViaFZF(errOut io.Writer, records []alias.Record) ([]alias.Record, error) {
	fzfPath, err := lookFZF()
	if err != nil {
		return nil, ErrFZFNotFound
	}

	if len(records) == 0 {
		return []alias.Record{}, nil
	}

	var inputBuffer bytes.Buffer
	byLine := make(map[string]alias.Record, len(records))
	for _, r := range records {
		line := recordLine(r)
		byLine[line] = r
		inputBuffer.WriteString(line + "\n")
	}

	fzfCmd := exec.Command(fzfPath, "--multi", "--ansi", "--prompt", ui.PromptColor("Select aliases (TAB to multi-select, Enter to confirm) > "))
	fzfCmd.Stdin = &inputBuffer

	var outBuffer bytes.Buffer
	var errBuffer bytes.Buffer
	fzfCmd.Stdout = &outBuffer
	fzfCmd.Stderr = &errBuffer

	if err := fzfCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// 130: interrupted with Esc or Ctrl-C.
			if exitErr.ExitCode() == 130 {
				return nil, ErrFZFCancelled
			}
			// 1: no match.
			if exitErr.ExitCode() == 1 && strings.TrimSpace(outBuffer.String()) == "" {
				return []alias.Record{}, nil
			}
		}
		return nil, fmt.Errorf("fzf execution failed (stderr: %s): %w", strings.TrimSpace(errBuffer.String()), err)
	}

	selectedLines := strings.TrimSpace(outBuffer.String())
	if selectedLines == "" {
		return []alias.Record{}, nil
	}

	var chosen []alias.Record
	for _, line := range strings.Split(selectedLines, "\n") {
		trimmed := strings.TrimSpace(line)
		if r, ok := byLine[trimmed]; ok {
			chosen = append(chosen, r)
		} else if trimmed != "" {
			fmt.Fprintln(errOut, ui.WarningColor(fmt.Sprintf("Warning: fzf selected an unknown line: %s", trimmed)))
		}
	}
	return chosen, nil
}

func displayRecordsForNumericSelection(out io.Writer, records []alias.Record) {
	fmt.Fprintln(out, ui.PromptColor("Select aliases to import (e.g., 1,3-5, or 'all', 'none'):"))
	for i, r := range records {
		fmt.Fprintf(out, "%d. %s => %s\n", i+1, ui.AliasNameColor(r.Alias), ui.PatternColor(r.Pattern))
	}
}

func parseNumericSelectionInput(input string, count int) ([]int, error) {
	trimmedInput := strings.TrimSpace(strings.ToLower(input))
	if trimmedInput == "none" || trimmedInput == "" {
		return []int{}, nil
	}
	if trimmedInput == "all" {
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	var selections []int
	for _, part := range strings.Split(trimmedInput, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			rangeParts := strings.SplitN(part, "-", 2)
			start, err1 := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
			if err1 != nil || err2 != nil || start <= 0 || end < start || end > count {
				return nil, fmt.Errorf("invalid range or number (max %d): %s", count, part)
			}
			for i := start; i <= end; i++ {
				selections = append(selections, i-1)
			}
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num <= 0 || num > count {
			return nil, fmt.Errorf("invalid number (max %d): %s", count, part)
		}
		selections = append(selections, num-1)
	}

	seen := make(map[int]bool, len(selections))
	unique := make([]int, 0, len(selections))
	for _, idx := range selections {
		if !seen[idx] {
			seen[idx] = true
			unique = append(unique, idx)
		}
	}
	return unique, nil
}

func selectRecordsNumerically(out io.Writer, reader *bufio.Reader, records []alias.Record) ([]alias.Record, error) {
	if len(records) == 0 {
		return []alias.Record{}, nil
	}

	displayRecordsForNumericSelection(out, records)
	fmt.Fprint(out, ui.PromptColor("Your choice: "))
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	indices, err := parseNumericSelectionInput(input, len(records))
	if err != nil {
		return nil, fmt.Errorf("invalid selection input: %w", err)
	}

	chosen := make([]alias.Record, 0, len(indices))
	for _, idx := range indices {
		chosen = append(chosen, records[idx])
	}
	return chosen, nil
}
