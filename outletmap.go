// Package outletmap locates Subway outlet listings on the public store
// locator, extracts them into structured records, persists them idempotently,
// and answers free-text questions about the stored outlets ("which outlet
// closes latest", "what outlets are in Bangsar").
//
// This package contains domain types, interfaces, and the pure query logic
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/, rod/,
// gemini/).
package outletmap
