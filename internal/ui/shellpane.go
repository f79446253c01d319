package ui

import (
	"bytes"
	"io"
	"os/exec"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"splitpane/internal/pty"
)

// ShellOutputMsg carries bytes read from the PTY for display.
type ShellOutputMsg struct {
	Data []byte
}

// ShellPane runs a command on a PTY and renders its output in a viewport,
// sized to whatever region the host places it in. Keys forwarded via
// HandleKey are written to the PTY, so the pane is fully interactive.
type ShellPane struct {
	ptyRunner pty.Runner
	ptmx      io.ReadWriteCloser
	content   *bytes.Buffer
	viewport  viewport.Model
	width     int
	height    int
	workDir   string
	outputCh  chan []byte
}

const defaultPaneWidth = 80
const defaultPaneHeight = 10

// NewShellPane creates a shell pane that will spawn a PTY in workDir.
// The ptyRunner is injected so implementations can be swapped.
func NewShellPane(ptyRunner pty.Runner, workDir string) *ShellPane {
	return &ShellPane{
		ptyRunner: ptyRunner,
		content:   &bytes.Buffer{},
		viewport:  viewport.New(defaultPaneWidth, defaultPaneHeight),
		width:     defaultPaneWidth,
		height:    defaultPaneHeight,
		workDir:   workDir,
		outputCh:  make(chan []byte, 64),
	}
}

// Init spawns the shell and starts pumping PTY output into the Elm loop.
func (s *ShellPane) Init() tea.Cmd {
	shell := "sh"
	if path, err := exec.LookPath("bash"); err == nil {
		shell = path
	}
	cmd := exec.Command(shell)
	cmd.Dir = s.workDir
	if cmd.Dir == "" {
		cmd.Dir = "."
	}

	sz := pty.Size{Rows: uint16(s.height), Cols: uint16(s.width)}
	ptmx, err := s.ptyRunner.Start(cmd, sz)
	if err != nil {
		s.content.WriteString("Failed to spawn shell: " + err.Error() + "\r\n")
		s.refreshViewport()
		return nil
	}
	s.ptmx = ptmx

	// Reader goroutine: the only background work in the program. Output
	// reaches Update via waitForOutput, never by touching state directly.
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				cp := make([]byte, n)
				copy(cp, buf[:n])
				select {
				case s.outputCh <- cp:
				default:
					// Channel full, drop (avoid blocking)
				}
			}
			if err != nil {
				close(s.outputCh)
				return
			}
		}
	}()

	return s.waitForOutput()
}

func (s *ShellPane) waitForOutput() tea.Cmd {
	return func() tea.Msg {
		data, ok := <-s.outputCh
		if !ok {
			return nil
		}
		return ShellOutputMsg{Data: data}
	}
}

// HandleOutput appends PTY output and re-arms the output pump.
func (s *ShellPane) HandleOutput(msg ShellOutputMsg) tea.Cmd {
	if s.ptmx != nil {
		s.content.Write(msg.Data)
		s.refreshViewport()
		s.viewport.GotoBottom()
	}
	return s.waitForOutput()
}

// HandleKey forwards a key press to the shell.
func (s *ShellPane) HandleKey(msg tea.KeyMsg) {
	if s.ptmx == nil {
		return
	}
	if b := keyToPTYBytes(msg); len(b) > 0 {
		s.ptmx.Write(b)
	}
}

// Resize fits the viewport and the PTY to a new region size.
func (s *ShellPane) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width = width
	s.height = height
	s.viewport.Width = width
	s.viewport.Height = height
	if s.ptmx != nil && s.ptyRunner != nil {
		s.ptyRunner.Resize(s.ptmx, pty.Size{Rows: uint16(height), Cols: uint16(width)})
	}
	s.refreshViewport()
}

// View renders the current shell output.
func (s *ShellPane) View() string {
	return s.viewport.View()
}

func (s *ShellPane) refreshViewport() {
	s.viewport.SetContent(s.content.String())
}

// Close releases PTY resources. Call on program exit.
func (s *ShellPane) Close() error {
	if s.ptmx != nil {
		return s.ptmx.Close()
	}
	return nil
}

// keyToPTYBytes converts a Bubble Tea KeyMsg to bytes the PTY expects.
func keyToPTYBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte{'\t'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyUp:
		return []byte{0x1b, '[', 'A'}
	case tea.KeyDown:
		return []byte{0x1b, '[', 'B'}
	case tea.KeyRight:
		return []byte{0x1b, '[', 'C'}
	case tea.KeyLeft:
		return []byte{0x1b, '[', 'D'}
	case tea.KeyCtrlC:
		return []byte{0x03}
	case tea.KeyCtrlD:
		return []byte{0x04}
	case tea.KeyEsc:
		return []byte{0x1b}
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	default:
		if len(msg.Runes) > 0 {
			return []byte(string(msg.Runes))
		}
		return nil
	}
}
