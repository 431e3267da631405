package models

// OutputKind tags the result of an orchestrated operation so the UI can
// route it to the right field with one switch instead of dispatching on
// field names. Encrypt output feeds the decrypt slot and vice versa, so
// the next natural action operates on what was just produced.
type OutputKind int

const (
	// OutputKeyGenerated routes a fresh key/IV pair to the key and IV fields.
	OutputKeyGenerated OutputKind = 1

	// OutputEncrypted routes hex ciphertext to the decrypt slot.
	OutputEncrypted OutputKind = 2

	// OutputDecrypted routes recovered plaintext to the encrypt slot.
	OutputDecrypted OutputKind = 3
)

// OperationOutput is the result of one orchestrator action, carrying the
// produced value together with its routing tag.
type OperationOutput struct {
	// Kind selects the destination field(s).
	Kind OutputKind

	// Value is the produced text: hex ciphertext, plaintext, or unused
	// when Kind is OutputKeyGenerated.
	Value string

	// Material holds the generated key/IV pair when Kind is
	// OutputKeyGenerated.
	Material KeyMaterial
}
