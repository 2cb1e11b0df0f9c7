package script

import "arc/comp"

// CompileString parses and binds a scenario program in one step, the
// entry point cmd/arcc and the textual-frontend tests use.
func CompileString(name, source string) (comp.Comp, error) {
	program, err := ParseString(name, source)
	if err != nil {
		return nil, err
	}
	return Bind(program), nil
}

// CompileFile is CompileString reading its source from disk.
func CompileFile(path string) (comp.Comp, error) {
	program, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Bind(program), nil
}
