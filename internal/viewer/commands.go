package viewer

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/meshstats/internal/notify"
	"github.com/Faultbox/meshstats/pkg/math"
)

var (
	// ErrQuit is returned by Execute for the quit command.
	ErrQuit = errors.New("quit")
	// ErrUnknownCommand is returned for an unrecognised action.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a command has the wrong arguments.
	ErrUsage = errors.New("usage")
)

// Command is a single viewer action, typed in the shell or read from a
// JSON script.
type Command struct {
	Action string      `json:"action"`
	Path   string      `json:"path,omitempty"`
	Point  *[3]float32 `json:"point,omitempty"`
}

const helpText = `Commands:
  open [path]     Load a mesh file (dialog when no path is given)
  save [path]     Save the current mesh (default path or dialog when omitted)
  stats           Show mesh statistics
  show            List vertices, triangles and smooth vertex normals
  subdivide       Replace the mesh with its 4-to-1 subdivision
  check x y z     Check whether a point is inside the mesh
  log             Show notifications
  state           Print the session state as JSON
  help            Show this help
  quit            Exit`

// ParseCommand parses one shell line. An empty line yields a command with
// an empty action.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, nil
	}

	cmd := Command{Action: strings.ToLower(fields[0])}
	args := fields[1:]

	switch cmd.Action {
	case "open", "save":
		// Paths may contain spaces.
		cmd.Path = strings.TrimSpace(line[len(fields[0]):])
	case "check":
		if len(args) != 3 {
			return Command{}, fmt.Errorf("%w: check x y z", ErrUsage)
		}
		var p [3]float32
		for i, arg := range args {
			f, err := strconv.ParseFloat(arg, 32)
			if err != nil || !math.IsFinite(f) {
				return Command{}, fmt.Errorf("%w: check x y z: %q is not a finite number", ErrUsage, arg)
			}
			p[i] = float32(f)
		}
		cmd.Point = &p
	case "stats", "show", "subdivide", "log", "state", "help", "quit", "exit":
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrUsage, cmd.Action)
		}
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}
	return cmd, nil
}

// Execute runs cmd and writes its output, including any notification it
// posted, to w. A cancelled dialog is not an error.
func (v *Viewer) Execute(cmd Command, w io.Writer) error {
	prev, _ := v.notes.Last()
	err := v.execute(cmd, w)
	if n, ok := v.notes.Last(); ok && n.Seq != prev.Seq {
		printNotification(w, n)
	}
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	return err
}

func (v *Viewer) execute(cmd Command, w io.Writer) error {
	switch cmd.Action {
	case "":
		return nil

	case "open":
		if cmd.Path == "" {
			return v.OpenDialog()
		}
		return v.Open(cmd.Path)

	case "save":
		switch {
		case cmd.Path != "":
			return v.SaveAs(cmd.Path)
		case v.opts.SavePath != "":
			return v.SaveAs(v.opts.SavePath)
		default:
			return v.SaveAsDialog()
		}

	case "stats":
		s, err := v.Summary()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, s)

	case "show":
		l, err := v.Listing()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Vertices:\n%s\n\nTriangles:\n%s\n\nSmooth vertex normals:\n%s\n",
			l.Vertices, l.Triangles, l.SmoothVertexNormals)

	case "subdivide":
		_, err := v.Subdivide()
		return err

	case "check":
		if cmd.Point == nil {
			return fmt.Errorf("%w: check x y z", ErrUsage)
		}
		p := cmd.Point
		inside, err := v.CheckPoint(math.Vec3f{X: p[0], Y: p[1], Z: p[2]})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Is point inside mesh: %t\n", inside)

	case "log":
		for _, n := range v.notes.All() {
			printNotification(w, n)
		}

	case "state":
		data, err := json.MarshalIndent(v.State(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))

	case "help":
		fmt.Fprintln(w, helpText)

	case "quit", "exit":
		return ErrQuit

	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Action)
	}
	return nil
}

func printNotification(w io.Writer, n notify.Notification) {
	switch n.Type {
	case notify.Warning:
		fmt.Fprintf(w, "WARN  %s\n", n.Message)
	case notify.Error:
		fmt.Fprintf(w, "ERROR %s\n", n.Message)
	default:
		fmt.Fprintf(w, "INFO  %s\n", n.Message)
	}
}

// Run reads commands line by line from r until EOF or quit. Command errors
// are reported to w and do not stop the loop.
func (v *Viewer) Run(r io.Reader, w io.Writer, prompt string) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			break
		}

		cmd, err := ParseCommand(scanner.Text())
		if err == nil {
			err = v.Execute(cmd, w)
		}
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		}
	}
	return scanner.Err()
}

// RunScript executes a JSON array of commands, stopping at the first
// failure or at quit.
func (v *Viewer) RunScript(r io.Reader, w io.Writer) error {
	var cmds []Command
	if err := json.NewDecoder(r).Decode(&cmds); err != nil {
		return fmt.Errorf("decoding script: %w", err)
	}

	for i, cmd := range cmds {
		err := v.Execute(cmd, w)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("command %d (%s): %w", i, cmd.Action, err)
		}
	}
	return nil
}
