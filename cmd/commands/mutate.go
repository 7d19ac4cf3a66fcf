package commands

import (
	"fmt"
	"strings"

	"github.com/pluqqy/fieldgroups/internal/cli"
	"github.com/pluqqy/fieldgroups/pkg/grouping"
	"github.com/pluqqy/fieldgroups/pkg/session"
)

// editSession opens a session for contentTypeID, runs edit and saves the
// result when edit succeeds. The returned message is printed on success.
func editSession(contentTypeID string, edit func(s *session.Session) (string, error)) error {
	ctx := cli.NewCommandContext()
	s, err := ctx.OpenSession(contentTypeID)
	if err != nil {
		return err
	}

	for _, dropped := range s.Store.Dropped() {
		cli.PrintWarning("Dropped field %q from group %s: no longer in the schema", dropped.Field.ID, dropped.GroupID)
	}

	msg, err := edit(s)
	if err != nil {
		return err
	}

	if err := s.Save(); err != nil {
		return err
	}

	cli.PrintSuccess("%s", msg)
	return nil
}

// findGroup resolves a group reference and wraps lookup failures with context.
func findGroup(s *session.Session, ref string) (string, error) {
	g, err := s.Store.FindGroup(ref)
	if err != nil {
		return "", fmt.Errorf("in content type %s: %w", s.ContentType.ID(), err)
	}
	return g.ID, nil
}

func groupName(s *session.Session, id string) string {
	g, _ := s.Store.Group(id)
	return cli.GroupLabel(g.Name)
}

func apply(s *session.Session, action grouping.Action) error {
	if err := s.Apply(action); err != nil {
		return fmt.Errorf("cannot %s: %w", strings.ReplaceAll(action.Type().String(), "_", " "), err)
	}
	return nil
}
