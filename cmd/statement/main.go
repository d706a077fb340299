// Command statement parses bank statement exports offline and exposes the
// categorization and classification rules for quick checks.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("statement")
	}
}
