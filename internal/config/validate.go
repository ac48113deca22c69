package config

import (
	"fmt"

	"github.com/glosariodev/glosario-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if err := c.Seeder.validate(); err != nil {
		return fmt.Errorf("seeder: %w", err)
	}

	return nil
}

func (s *SeederConfig) validate() error {
	if s.MaxItems <= 0 {
		return fmt.Errorf("max_items must be > 0 (got %d)", s.MaxItems)
	}
	if s.TimeBudget < 0 {
		return fmt.Errorf("time_budget must be >= 0 (got %v)", s.TimeBudget)
	}
	if !domain.ChildrenPolicy(s.OnUpdateChildren).IsValid() {
		return fmt.Errorf("on_update_children must be %q or %q (got %q)",
			domain.ChildrenPreserve, domain.ChildrenReplace, s.OnUpdateChildren)
	}
	return nil
}

// ChildrenPolicy returns the validated child-collection update policy.
func (s SeederConfig) ChildrenPolicy() domain.ChildrenPolicy {
	return domain.ChildrenPolicy(s.OnUpdateChildren)
}
