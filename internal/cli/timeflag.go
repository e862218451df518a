package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*timeFlag)(nil)

var timeLayouts = []string{"2006-01-02T15:04", "2006-01-02"}

// timeFlag is a pflag.Value for the --now flag. Values without an offset
// are read in loc.
type timeFlag struct {
	t   time.Time
	loc *time.Location
	set bool
}

func (f *timeFlag) String() string {
	if !f.set {
		return ""
	}
	return f.t.Format(time.RFC3339)
}

func (f *timeFlag) Set(s string) error {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		f.t, f.set = t, true
		return nil
	}
	loc := f.loc
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			f.t, f.set = t, true
			return nil
		}
	}
	return fmt.Errorf("invalid time %q (expected RFC3339, 2006-01-02T15:04 or 2006-01-02)", s)
}

func (f *timeFlag) Type() string {
	return "time"
}
