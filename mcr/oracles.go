// SPDX-License-Identifier: MIT

package mcr

import (
	"fmt"

	"github.com/katalvlaran/cycleratio/parametric"
)

// Oracle names accepted by OracleByName.
const (
	OracleMaxParametric = "max-parametric"
	OracleBisection     = "bisection"
	OracleExhaustive    = "exhaustive"
)

// OracleNames lists the names OracleByName accepts, default first.
func OracleNames() []string {
	return []string{OracleMaxParametric, OracleBisection, OracleExhaustive}
}

// OracleByName builds one of the parametric oracles. An empty name selects
// the default, max-parametric.
func OracleByName(name string, opts ...parametric.Option) (Oracle, error) {
	switch name {
	case "", OracleMaxParametric:
		return parametric.NewMaxParametric(opts...), nil
	case OracleBisection:
		return parametric.NewBisection(opts...), nil
	case OracleExhaustive:
		return parametric.NewExhaustive(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownOracle, name, OracleNames())
	}
}
