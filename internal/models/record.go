package models

// RenewalRecord is the CSV shape of one renewal list row.
type RenewalRecord struct {
	PolicyNum string `csv:"policynum"`
	CCode     string `csv:"ccode"`
	Name      string `csv:"name"`
	PCode     string `csv:"pcode"`
	CSRCode   string `csv:"csrcode"`
	Insurer   string `csv:"insurer"`
	BusCode   string `csv:"buscode"`
	Renewal   string `csv:"renewal"`
	Pulled    string `csv:"Pulled"`
	DL        string `csv:"D/L"`
}

// NewRenewalRecord converts a projected row into its CSV record. Separator
// rows become records with every field empty.
func NewRenewalRecord(row Row) RenewalRecord {
	return RenewalRecord{
		PolicyNum: DisplayString(row.Get(ColumnPolicyNum)),
		CCode:     DisplayString(row.Get(ColumnCCode)),
		Name:      DisplayString(row.Get(ColumnName)),
		PCode:     DisplayString(row.Get(ColumnPCode)),
		CSRCode:   DisplayString(row.Get(ColumnCSRCode)),
		Insurer:   DisplayString(row.Get(ColumnInsurer)),
		BusCode:   DisplayString(row.Get(ColumnBusCode)),
		Renewal:   DisplayString(row.Get(ColumnRenewal)),
		Pulled:    DisplayString(row.Get(ColumnPulled)),
		DL:        DisplayString(row.Get(ColumnDL)),
	}
}
