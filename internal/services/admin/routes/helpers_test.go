package routes

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/fleetdesk/internal/platform/i18n"
)

type stubUnit struct {
	name string
}

func (u stubUnit) Name() string     { return u.name }
func (u stubUnit) TitleKey() string { return u.name + ".title" }

func (u stubUnit) Component(tr i18n.Translator) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, tr.Resolve(u.TitleKey()))
		return err
	})
}

func staticLoader(name string) Loader {
	return func(context.Context) (Unit, error) {
		return stubUnit{name: name}, nil
	}
}
