// Package lostfound exposes the urgency triage subsystem to the report
// intake and search workflows.
//
// Quick start:
//
//	t, err := lostfound.New(lostfound.WithModelDir("models/urgency"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tier := t.ClassifyReport("black wallet", "leather wallet with ID cards", "Wallet")
//	fmt.Println(tier) // High
//
// A Triage with no loadable model still answers every call, returning
// TierUnrated — report intake is never blocked by a missing model. The
// Triage instance is safe for concurrent use. Create once, reuse across
// requests.
package lostfound
