package matchers

// Import all matcher subpackages to register them with the global registry.
// This file triggers all init() functions in the matcher packages.
import (
	_ "github.com/leapstack-labs/cxxstd/pkg/classify/matchers/consteval"
	_ "github.com/leapstack-labs/cxxstd/pkg/classify/matchers/deduction"
	_ "github.com/leapstack-labs/cxxstd/pkg/classify/matchers/operators"
	_ "github.com/leapstack-labs/cxxstd/pkg/classify/matchers/records"
)
