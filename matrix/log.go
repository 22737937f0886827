// SPDX-License-Identifier: MIT

package matrix

import logging "github.com/ipfs/go-log/v2"

// log is the package logger. Kernels only emit Debug events (singular pivots,
// inconsistent rows, non-finite results under WithNoSingularCheck); enable with
// logging.SetLogLevel("matrix", "debug") or GOLOG_LOG_LEVEL="matrix=debug".
var log = logging.Logger("matrix")
