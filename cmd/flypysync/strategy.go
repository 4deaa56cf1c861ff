package main

import (
	"fmt"

	"github.com/at-ishikawa/flypysync/internal/userdict"
	"github.com/spf13/pflag"
)

type Strategy userdict.Strategy

func (s *Strategy) Set(val string) error {
	for _, strategy := range userdict.AllStrategies {
		if val == string(strategy) {
			*s = Strategy(strategy)
			return nil
		}
	}
	return fmt.Errorf("invalid strategy: %s", val)
}

func (s Strategy) String() string {
	return string(s)
}

func (s *Strategy) Type() string {
	return "strategy"
}

var _ pflag.Value = (*Strategy)(nil)
