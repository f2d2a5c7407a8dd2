/*
Package runner drives a batch of candidate strings through an automaton and
hands every verdict to a reporter.

It is the bridge between the engine and the outside world: a ports.LineSource
supplies the candidates, the engine classifies them (in parallel, results kept
in input order) and a ports.Reporter presents each result.

# Key Components

  - Run: reads, classifies and reports, returning a Summary.
  - TextReporter: the classic "ACCEPTED LINE" / "REJECTED LINE" / "WRONG SYMBOL:" output.
  - JSONReporter: one JSON object per line for tooling.

# Usage

	summary, err := runner.Run(ctx, eng, a, file.NewSource("strings.txt"), runner.NewTextReporter(os.Stdout))
	if err != nil {
		log.Fatal(err)
	}
*/
package runner
