// Packages lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains small shared value types (see nullable) used by
// both the request payloads and the store.
package lib
