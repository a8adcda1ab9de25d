package healthz

import "errors"

var errDatabaseUnreachable = errors.New("the database is not reachable")
