package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// Hunspell wraps a running hunspell process in ispell-compatible pipe mode.
//
// The process handle is not safe for concurrent use; every word exchange
// holds mu for its duration.
type Hunspell struct {
	stdin io.WriteCloser
	out   *bufio.Reader
	wait  func() error

	mu     sync.Mutex
	closed bool
}

// NewHunspell starts a hunspell subprocess for the given affix and word
// files. Both must share a base path, e.g. dir/en_US.aff and dir/en_US.dic.
func NewHunspell(aff, dic string) (*Hunspell, error) {
	base := strings.TrimSuffix(aff, ".aff")
	if base == aff || dic != base+".dic" {
		return nil, fmt.Errorf("dictionary: hunspell needs <base>.aff and <base>.dic, got %s and %s", aff, dic)
	}

	cmd := exec.Command("hunspell", "-d", base, "-a", "-i", "UTF-8")
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("dictionary: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("dictionary: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("dictionary: hunspell start (is hunspell installed?): %w", err)
	}

	h, err := newHunspellPipe(stdin, stdout, cmd.Wait)
	if err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return nil, err
	}
	return h, nil
}

// newHunspellPipe speaks the pipe protocol over an already running process.
func newHunspellPipe(stdin io.WriteCloser, stdout io.Reader, wait func() error) (*Hunspell, error) {
	h := &Hunspell{
		stdin: stdin,
		out:   bufio.NewReader(stdout),
		wait:  wait,
	}
	// Discard the initial banner: "Hunspell x.y.z\n"
	if _, err := h.out.ReadString('\n'); err != nil {
		return nil, fmt.Errorf("dictionary: hunspell init failed: %w", err)
	}
	return h, nil
}

// Check reports whether hunspell recognizes word.
func (h *Hunspell) Check(word string) (bool, error) {
	correct, _, err := h.exchange(word)
	return correct, err
}

// Suggest returns hunspell's suggestions for word. A recognized word has
// none.
func (h *Hunspell) Suggest(word string) ([]string, error) {
	_, suggest, err := h.exchange(word)
	if err != nil {
		return nil, err
	}
	if suggest == nil {
		suggest = []string{}
	}
	return suggest, nil
}

// Close ends the hunspell session and waits for the process to exit.
func (h *Hunspell) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	err := h.stdin.Close()
	if h.wait != nil {
		if werr := h.wait(); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

func (h *Hunspell) exchange(word string) (bool, []string, error) {
	if strings.ContainsAny(word, "\r\n") {
		return false, nil, fmt.Errorf("dictionary: word contains a line break: %q", word)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false, nil, ErrClosed
	}
	return h.checkWord(word)
}

// checkWord sends one word to hunspell and parses the response.
// Ispell pipe protocol:
//
//	*                 correct
//	+ root            correct by affixation
//	-                 correct compound
//	& w n o: s1, s2   misspelled, suggestions
//	# w o             misspelled, no suggestions
//
// A blank line ends the result. hunspell may split a token into several
// words or skip it entirely (numbers); the token is correct unless some
// part is misspelled.
func (h *Hunspell) checkWord(word string) (correct bool, suggest []string, err error) {
	// '^' stops hunspell from reading the word as a pipe command.
	if _, err = fmt.Fprintf(h.stdin, "^%s\n", word); err != nil {
		return false, nil, fmt.Errorf("dictionary: hunspell write: %w", err)
	}

	misspelled := false
	for {
		line, e := h.out.ReadString('\n')
		if e != nil && !(errors.Is(e, io.EOF) && line != "") {
			if errors.Is(e, io.EOF) {
				e = io.ErrUnexpectedEOF
			}
			return false, nil, fmt.Errorf("dictionary: hunspell read: %w", e)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break // blank line = end of result for this word
		}

		switch line[0] {
		case '&': // misspelled with suggestions: & word count offset: s1, s2
			misspelled = true
			if idx := strings.Index(line, ": "); idx != -1 {
				for _, s := range strings.Split(line[idx+2:], ", ") {
					if s = strings.TrimSpace(s); s != "" {
						suggest = append(suggest, s)
					}
				}
			}
		case '#':
			misspelled = true
		}
	}
	return !misspelled, suggest, nil
}
