// Package halv1 groups the newer hardware-abstraction interface family.
//
// Compared with halv0, every capability reports classified errors (an
// ErrorKind per domain), SPI is split into a Bus and a transactional Device,
// I2C exposes a single interface with a Transaction method, serial streams
// follow the slice-based read/write/flush shape of serialio, and digital
// inputs may block waiting for a level or edge.
package halv1
