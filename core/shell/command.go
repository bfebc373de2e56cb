package shell

// Command is the result of resolving one line of input.
type Command struct {
	// Name is the token the command was invoked with. It is never empty
	// and is never rewritten to the resolved path.
	Name string

	Kind Kind
}

// Kind classifies a resolved command. Exactly three implementations
// exist: Builtin, External and NotFound.
type Kind interface {
	kind()
}

// Builtin is a command implemented inside the shell, requiring no
// child process.
type Builtin struct {
	Action BuiltinAction
}

// External is a program located via the search path and run as a
// separate process.
type External struct {
	// Path is the resolved filesystem path of the executable.
	Path string

	// Argv is the argument vector. Argv[0] is the original name, never
	// the resolved path; Argv[1:] are the remaining tokens of the line.
	Argv []string
}

// NotFound marks a name that is neither a builtin nor present on the
// search path.
type NotFound struct{}

func (Builtin) kind()  {}
func (External) kind() {}
func (NotFound) kind() {}

// BuiltinAction is the payload of a Builtin. Exactly five
// implementations exist: Exit, Echo, Type, Pwd and Cd.
type BuiltinAction interface {
	builtinAction()
}

// Exit terminates the hosting process with Code.
type Exit struct {
	Code uint8
}

// Echo emits Text followed by a single newline.
type Echo struct {
	// Text is the raw remainder of the line, whitespace intact.
	Text string
}

// Type reports how Target would be interpreted. A nil Target is the
// self-reference sentinel for `type type`; it bounds resolution at one
// extra level by construction.
type Type struct {
	Target *Command
}

// Pwd reports the working directory.
type Pwd struct{}

// Cd changes the working directory. Path is kept raw; tilde expansion
// is deferred to execution.
type Cd struct {
	Path string
}

func (Exit) builtinAction() {}
func (Echo) builtinAction() {}
func (Type) builtinAction() {}
func (Pwd) builtinAction()  {}
func (Cd) builtinAction()   {}
