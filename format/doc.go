// Package format classifies a loaded ROM image against a table of known rom
// type descriptors and normalizes its header.
//
// A descriptor names a rom type, the signature bytes that identify it, the
// platform it belongs to, and the byte ranges an image of that type leaves
// free for new content. Tables are loaded from YAML; descriptors are tried in
// declaration order, so when two descriptors could match the same bytes the
// one declared first wins.
//
// For the SNES platform, detection probes four physical layouts in a fixed
// order (unheadered HiROM, unheadered LoROM, then their copier-headered
// counterparts) using the internal checksum/complement pairs near the end of
// the first 32KB bank. A matching headered layout strips the 0x200-byte
// copier header from the image as a side effect.
package format
