// Package check contains the individual verification stages: syntax
// normalization, domain classification, DNS (MX/DMARC) resolution and
// the SMTP mailbox probe. Each stage turns external, unreliable input
// into a plain signal value; none of them fails the pipeline.
package check
