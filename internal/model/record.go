package model

import "strconv"

// Kind is the transaction type carried in the first output column.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// Kinds is the sampling set, in fixed order so a seeded run is reproducible.
var Kinds = [5]Kind{KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback}

// Referencing reports whether the kind points at a previously issued
// transaction identifier instead of minting its own.
func (k Kind) Referencing() bool {
	switch k {
	case KindDispute, KindResolve, KindChargeback:
		return true
	}
	return false
}

// Header is the first line of every dataset, exactly as the processing
// engine expects it.
const Header = "type, client, tx, amount"

// Record is one emitted data line. Amounts are raw fixed-point integers;
// the engine interprets them as value/10000, no conversion happens here.
type Record struct {
	Kind     Kind
	ClientID uint32
	TxRef    uint64
	Amount   uint32
}

// AppendLine appends the record's wire form, "<kind>, <client>, <tx>, <amount>\n",
// to buf and returns the extended slice.
func (r Record) AppendLine(buf []byte) []byte {
	buf = append(buf, string(r.Kind)...)
	buf = append(buf, ", "...)
	buf = strconv.AppendUint(buf, uint64(r.ClientID), 10)
	buf = append(buf, ", "...)
	buf = strconv.AppendUint(buf, r.TxRef, 10)
	buf = append(buf, ", "...)
	buf = strconv.AppendUint(buf, uint64(r.Amount), 10)
	buf = append(buf, '\n')
	return buf
}

func (r Record) String() string {
	return string(r.AppendLine(nil))
}
