package main

import (
	"fmt"

	"github.com/praetorian-inc/scribe/pkg/config"
	"github.com/praetorian-inc/scribe/pkg/ignore"
	"github.com/praetorian-inc/scribe/pkg/session"
	"github.com/praetorian-inc/scribe/pkg/store"
	"github.com/spf13/cobra"
)

// newSession builds a session over the configured store and ignore rules.
// The dictionary is not opened; callers Init it or leave that to a client.
func newSession(cmd *cobra.Command, cfg config.Config) (*session.Session, *ignore.Matcher, error) {
	s, err := store.New(cfg.StoreOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}

	m, err := ignore.Load(cfg.IgnoreOptions())
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("loading ignore rules: %w", err)
	}

	opts := []session.Option{
		session.WithStore(s),
		session.WithDefaults(cfg.DictionaryOptions()),
		session.WithLogger(newLogger(cmd)),
	}
	if m != nil {
		opts = append(opts, session.WithExcluder(m))
	}
	return session.New(opts...), m, nil
}

// openSession builds a session and opens the configured dictionary.
func openSession(cmd *cobra.Command, cfg config.Config) (*session.Session, *ignore.Matcher, error) {
	sess, m, err := newSession(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := sess.Init(session.InitRequest{}); err != nil {
		sess.Close()
		return nil, nil, err
	}
	return sess, m, nil
}
