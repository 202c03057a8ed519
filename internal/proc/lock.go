package proc

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"
)

var findProcessFunc = ps.FindProcess

// Lock is an advisory single-writer lock on the store file, held through a
// sibling lockfile containing "pid|executable". The sqlite store tolerates
// concurrent writers on its own; the JSON store does not, so every command
// takes the lock before touching either.
type Lock struct {
	path string
}

// ErrHeld is returned when another live starflow process holds the lock.
var ErrHeld = errors.New("store is locked by another running process")

// Acquire takes the lock at lockPath. A lockfile left behind by a dead
// process is treated as stale and replaced.
func Acquire(lockPath string) (*Lock, error) {
	if holder, live := holderOf(lockPath); live {
		return nil, fmt.Errorf("%w (pid %d)", ErrHeld, holder)
	}

	content := fmt.Sprintf("%d|%s", os.Getpid(), executableName())
	if err := os.WriteFile(lockPath, []byte(content), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	return &Lock{path: lockPath}, nil
}

// Release removes the lockfile. Safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

// Check reports whether lockPath is held by a live process other than this
// one, without taking the lock.
func Check(lockPath string) (pid int, live bool) {
	holder, ok := holderOf(lockPath)
	if !ok || holder == os.Getpid() {
		return 0, false
	}
	return holder, true
}

func holderOf(lockPath string) (pid int, live bool) {
	content, err := os.ReadFile(lockPath)
	if err != nil {
		return 0, false
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		return 0, false
	}

	pid, err = strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return 0, false
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		// Stale lockfile, the holder is gone.
		return 0, false
	}

	// A reused pid belonging to an unrelated process is also stale.
	if !strings.HasPrefix(process.Executable(), parts[1]) {
		return 0, false
	}

	return pid, true
}

func executableName() string {
	exe, err := os.Executable()
	if err != nil {
		return "starflow"
	}
	// Base name only, executables report short names on some platforms.
	if i := strings.LastIndexAny(exe, `/\`); i >= 0 {
		exe = exe[i+1:]
	}
	return exe
}
