// Package uuid generates Universally Unique Identifiers across the five
// RFC 4122 variants: time-based (v1), DCE security (v2), name-based with
// MD5 (v3) or SHA-1 (v5) hashing, and random (v4).
//
// A UUID is a 128-bit (16 byte) value. The six bit-fields of the format
// are staged in a Layout and serialized big-endian; the version tag sits in
// the top nibble of octet 6 and the variant tag in the top nibble of octet
// 8. NOTE: the variant is encoded as a full nibble (RFC 4122 family = 1)
// rather than the variable-width bit prefix of RFC 4122 section 4.1.1, so
// values are not bit-compatible with implementations that follow the RFC
// variant scheme exactly.
//
// Basic Usage:
//
//	// Random UUID
//	id, err := uuid.NewV4()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Time-based UUID (hardware address or random-multicast fallback)
//	id, err = uuid.NewV1()
//
//	// Deterministic name-based UUIDs
//	id = uuid.NewV3(uuid.NamespaceDNS, "example.org")
//	id = uuid.NewV5(uuid.NamespaceURL, "https://example.org")
//
// Custom Generator:
//
//	// Inject the node identifier and random source, e.g. for testing
//	gen := uuid.NewGeneratorWithNode(uuid.FixedNode{0x00, 0x2a, 0x35, 0x0d, 0x13, 0x80})
//	id, err := gen.NewV1()
//
// Formatting And Validation:
//
// String returns the canonical lowercase 8-4-4-4-12 form, UpperString the
// uppercase form and URN the urn:uuid:-prefixed form. IsValid accepts all
// three case-insensitively; it constrains the version digit to 0-5 but
// deliberately does not check the variant bits.
//
// Thread Safety:
//
// All generators may be used concurrently. The only shared mutable state is
// the process-wide clock sequence, which is seeded once from crypto/rand
// and advanced by atomic increment.
package uuid
