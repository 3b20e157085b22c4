package runner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
	"go.uber.org/multierr"
)

// plan is a Config with its Request applied.
type plan struct {
	Query        QuerySelector
	Src          int    `validate:"min=0"`
	Dst          int    `validate:"min=0"`
	MatFile      string `validate:"required"`
	DataPath     string
	CorrFunction string
	Out          string
	N            int `validate:"min=0"`
	MemSave      bool
	Profile      bool
}

// merge applies req over cfg and checks the result. It touches no files.
func (r *Runner) merge(cfg Config, req Request) (plan, error) {
	p := plan{
		Query:        req.Query,
		MatFile:      cfg.MatFile,
		DataPath:     cfg.DataPath,
		CorrFunction: cfg.CorrFunction,
		Out:          cfg.Out,
		N:            cfg.N,
		MemSave:      cfg.MemSave,
		Profile:      cfg.Profile,
	}
	if p.Query == nil {
		switch {
		case cfg.QIndex != nil:
			p.Query = ByIndex(*cfg.QIndex)
		case cfg.QName != "":
			p.Query = ByName(cfg.QName)
		}
	}
	if req.MatFile != "" {
		p.MatFile = req.MatFile
	}
	if req.Out != "" {
		p.Out = req.Out
	}
	if req.MemSave != nil {
		p.MemSave = *req.MemSave
	}

	var missing []string
	switch q := p.Query.(type) {
	case nil:
		missing = append(missing, "qindex|qname")
	case ByName:
		if q == "" {
			missing = append(missing, "qname")
		}
	}
	if req.Src == nil {
		missing = append(missing, "src")
	} else {
		p.Src = *req.Src
	}
	if req.Dst == nil {
		missing = append(missing, "dst")
	} else {
		p.Dst = *req.Dst
	}

	var errs error
	if len(missing) > 0 {
		errs = multierr.Append(errs, fmt.Errorf("missing parameters: %s", strings.Join(missing, ", ")))
	}
	if q, ok := p.Query.(ByIndex); ok && q < 0 {
		errs = multierr.Append(errs, fmt.Errorf("qindex %d is negative", q))
	}
	if err := r.validate.Struct(p); err != nil {
		var fields validator.ValidationErrors
		if !errors.As(err, &fields) {
			return p, fmt.Errorf("%w: %v", ErrRequestShape, err)
		}
		for _, fe := range fields {
			errs = multierr.Append(errs, fieldError(fe))
		}
	}
	if errs != nil {
		return p, fmt.Errorf("%w: %v", ErrRequestShape, errs)
	}
	return p, nil
}

func fieldError(fe validator.FieldError) error {
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("missing parameters: %s", name)
	case "min":
		return fmt.Errorf("%s %v is negative", name, fe.Value())
	default:
		return fmt.Errorf("%s: failed %q check", name, fe.Tag())
	}
}
