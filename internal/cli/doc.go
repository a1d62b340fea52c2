// Package cli provides the interactive time-capsule command line.
//
// It wires configuration, the local schedule ledger, the artifact store and
// the capsule services into a simple prompt loop.
//
// Key features:
//   - create — seal a message (and optional audio) into an encrypted artifact
//   - find   — look up capsules by identity, with a countdown for locked ones
//   - watch  — live countdown that announces capsules as they unlock
//   - open   — decrypt an artifact with a key token or a passphrase
//   - remove — delete a ledger entry
package cli
