package criteria

import (
	"fmt"

	"github.com/gobwas/glob"

	"logview/internal/app/errors"
	"logview/internal/app/model"
)

// MatchLoggers resolves glob patterns over logger names to ids; '.' separates name segments
func MatchLoggers(patterns []string, loggers []model.Logger) ([]int, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(p, '.')
		if err != nil {
			return nil, fmt.Errorf("%w: '%s': %w", errors.ErrInvalidPattern, p, err)
		}

		globs = append(globs, g)
	}

	ids := make([]int, 0)

	for _, l := range loggers {
		for _, g := range globs {
			if g.Match(l.Name) {
				ids = append(ids, l.ID)
				break
			}
		}
	}

	return ids, nil
}
