// Package halv0 groups the older hardware-abstraction interface family.
//
// The family is split per capability: digital, delay, spi, i2c and serial,
// plus nb for the non-blocking call contract. Errors carry no classification;
// any error value is acceptable.
package halv0
