// internal/cc1101/registers.go
package cc1101

// CC1101 configuration register file geometry.
// These values define the device contract and MUST NOT be configurable.

// ---- REGISTER FILE ----

// MaxRegister is the highest valid configuration register address.
const MaxRegister uint8 = 0x2E

// RegisterCount is the size of the configuration register file.
const RegisterCount = int(MaxRegister) + 1

// ---- PA TABLE ----

// PATableSize is the fixed power-amplifier table length. Writes
// shorter than this are padded with zeros before reaching hardware.
const PATableSize = 8

// ---- REGISTER ADDRESSES ----

// Configuration register addresses, per the CC1101 datasheet.
const (
	RegIOCFG2   uint8 = 0x00 // GDO2 output pin configuration
	RegIOCFG1   uint8 = 0x01 // GDO1 output pin configuration
	RegIOCFG0   uint8 = 0x02 // GDO0 output pin configuration
	RegFIFOTHR  uint8 = 0x03 // RX FIFO and TX FIFO thresholds
	RegSYNC1    uint8 = 0x04 // Sync word, high byte
	RegSYNC0    uint8 = 0x05 // Sync word, low byte
	RegPKTLEN   uint8 = 0x06 // Packet length
	RegPKTCTRL1 uint8 = 0x07 // Packet automation control
	RegPKTCTRL0 uint8 = 0x08 // Packet automation control
	RegADDR     uint8 = 0x09 // Device address
	RegCHANNR   uint8 = 0x0A // Channel number
	RegFSCTRL1  uint8 = 0x0B // Frequency synthesizer control
	RegFSCTRL0  uint8 = 0x0C // Frequency synthesizer control
	RegFREQ2    uint8 = 0x0D // Frequency control word, high byte
	RegFREQ1    uint8 = 0x0E // Frequency control word, middle byte
	RegFREQ0    uint8 = 0x0F // Frequency control word, low byte
	RegMDMCFG4  uint8 = 0x10 // Modem configuration
	RegMDMCFG3  uint8 = 0x11 // Modem configuration
	RegMDMCFG2  uint8 = 0x12 // Modem configuration
	RegMDMCFG1  uint8 = 0x13 // Modem configuration
	RegMDMCFG0  uint8 = 0x14 // Modem configuration
	RegDEVIATN  uint8 = 0x15 // Modem deviation setting
	RegMCSM2    uint8 = 0x16 // Main radio control state machine
	RegMCSM1    uint8 = 0x17 // Main radio control state machine
	RegMCSM0    uint8 = 0x18 // Main radio control state machine
	RegFOCCFG   uint8 = 0x19 // Frequency offset compensation
	RegBSCFG    uint8 = 0x1A // Bit synchronization configuration
	RegAGCCTRL2 uint8 = 0x1B // AGC control
	RegAGCCTRL1 uint8 = 0x1C // AGC control
	RegAGCCTRL0 uint8 = 0x1D // AGC control
	RegWOREVT1  uint8 = 0x1E // Event0 timeout, high byte
	RegWOREVT0  uint8 = 0x1F // Event0 timeout, low byte
	RegWORCTRL  uint8 = 0x20 // Wake-on-radio control
	RegFREND1   uint8 = 0x21 // Front end RX configuration
	RegFREND0   uint8 = 0x22 // Front end TX configuration
	RegFSCAL3   uint8 = 0x23 // Frequency synthesizer calibration
	RegFSCAL2   uint8 = 0x24 // Frequency synthesizer calibration
	RegFSCAL1   uint8 = 0x25 // Frequency synthesizer calibration
	RegFSCAL0   uint8 = 0x26 // Frequency synthesizer calibration
	RegRCCTRL1  uint8 = 0x27 // RC oscillator configuration
	RegRCCTRL0  uint8 = 0x28 // RC oscillator configuration
	RegFSTEST   uint8 = 0x29 // Frequency synthesizer calibration control
	RegPTEST    uint8 = 0x2A // Production test
	RegAGCTEST  uint8 = 0x2B // AGC test
	RegTEST2    uint8 = 0x2C // Various test settings
	RegTEST1    uint8 = 0x2D // Various test settings
	RegTEST0    uint8 = 0x2E // Various test settings
)

// ValidAddress reports whether addr falls inside the register file.
func ValidAddress(addr uint8) bool {
	return addr <= MaxRegister
}
