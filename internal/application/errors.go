package application

import "errors"

// ErrSimulatedPrice marks a resolution that only produced synthetic data;
// such prices are served but never written to the ledger.
var ErrSimulatedPrice = errors.New("simulated price not recorded")
