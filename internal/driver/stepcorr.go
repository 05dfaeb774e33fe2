// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import "github.com/c-h-david/rapidgo/internal/rerr"

// StepCorrespondence computes S = T/dt, the number of routing sub-steps
// per forcing interval (C9). T and dt are seconds; dt must exactly divide
// T. A value of S = 1 means routing coincides with forcing.
func StepCorrespondence(forcingStepSec, routingSubStepSec int) (int, error) {
	if forcingStepSec == 0 {
		return 0, rerr.Config("Qex_ncf", "forcing time step T is zero")
	}
	if routingSubStepSec <= 0 {
		return 0, rerr.Config("IS_dtR", "routing sub-step dt must be > 0, got %d", routingSubStepSec)
	}
	if forcingStepSec%routingSubStepSec != 0 {
		return 0, rerr.Config("IS_dtR", "routing sub-step %d does not evenly divide forcing step %d", routingSubStepSec, forcingStepSec)
	}
	return forcingStepSec / routingSubStepSec, nil
}
