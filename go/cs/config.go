package cs

// Config describes an engine to open.
type Config struct {
	Arch     Arch
	Mode     Mode
	Detail   bool
	Skipdata bool
	Syntax   Syntax
}

// Build opens and configures an engine. If any option is rejected the
// engine is closed before the error is returned.
func (c Config) Build() (*Engine, error) {
	e, err := New(c.Arch, c.Mode)
	if err != nil {
		return nil, err
	}
	if err := c.apply(e); err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

func (c Config) apply(e *Engine) error {
	if c.Detail {
		if err := e.SetDetail(true); err != nil {
			return err
		}
	}
	if c.Skipdata {
		if err := e.SetSkipdata(true); err != nil {
			return err
		}
	}
	if c.Syntax != SyntaxDefault {
		if err := e.SetSyntax(c.Syntax); err != nil {
			return err
		}
	}
	return nil
}
