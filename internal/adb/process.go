package adb

import (
	"fmt"
	"io"
	"os/exec"
	"sync"
)

// ShellProcess is a running `adb shell` subprocess with its standard input
// captured as a pipe. The handle is exclusively owned by one session; nothing
// else touches the underlying process.
type ShellProcess struct {
	cmd      *exec.Cmd
	stdin    io.WriteCloser
	done     chan error
	killOnce sync.Once
}

// StartShell spawns `adb -s <serial> shell <command>` with stdin piped. The
// returned handle must be reaped via Done or Kill on every exit path.
func StartShell(adbPath, serial, command string) (*ShellProcess, error) {
	cmd := exec.Command(adbPath, "-s", serial, "shell", command)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("adb shell stdin unavailable: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("adb shell spawn failed: %w", err)
	}
	p := &ShellProcess{
		cmd:   cmd,
		stdin: stdin,
		done:  make(chan error, 1),
	}
	go func() {
		p.done <- cmd.Wait()
	}()
	return p, nil
}

// WriteLine writes one command line, newline-terminated, to the subprocess.
// A failed or partial write is fatal for the session; the line protocol has
// no way to resume mid-line.
func (p *ShellProcess) WriteLine(line string) error {
	if _, err := io.WriteString(p.stdin, line+"\n"); err != nil {
		return fmt.Errorf("write to adb shell stdin: %w", err)
	}
	return nil
}

// Done reports subprocess exit. The waiter goroutine reaps the process, so an
// exit observed here needs no further cleanup.
func (p *ShellProcess) Done() <-chan error {
	return p.done
}

// Kill terminates the subprocess and waits for the reap. Safe to call once
// regardless of whether the process already exited; must not be called after
// receiving from Done.
func (p *ShellProcess) Kill() {
	p.killOnce.Do(func() {
		_ = p.stdin.Close()
		if p.cmd.Process != nil {
			_ = p.cmd.Process.Kill()
		}
		<-p.done
	})
}
