/*
Package atmos implements the International Standard Atmosphere (ISA)
model and the airspeed conversions built on top of it: temperature,
pressure, density and speed of sound as closed-form functions of
geopotential pressure altitude, plus calibrated/true airspeed and Mach
number conversions and the CAS/Mach crossover altitude.

All functions are pure and stateless. Units are SI throughout: metres,
Kelvin, Pascals, kg/m3, m/s. Inputs outside the physical domain are not
rejected; they propagate as NaN or Inf in the usual floating point way.
Callers that want up-front validation can use the Strict variants,
which return an error wrapping ErrOutOfDomain instead of computing.
*/
package atmos
