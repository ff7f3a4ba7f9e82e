package models

// Column names of the renewal list export.
const (
	ColumnPolicyNum = "policynum"
	ColumnCCode     = "ccode"
	ColumnName      = "name"
	ColumnPCode     = "pcode"
	ColumnCSRCode   = "csrcode"
	ColumnInsurer   = "insurer"
	ColumnBusCode   = "buscode"
	ColumnRenewal   = "renewal"
	ColumnPulled    = "Pulled"
	ColumnDL        = "D/L"
)

// TargetColumns is the fixed, ordered column list of the sorted renewal list.
var TargetColumns = []string{
	ColumnPolicyNum,
	ColumnCCode,
	ColumnName,
	ColumnPCode,
	ColumnCSRCode,
	ColumnInsurer,
	ColumnBusCode,
	ColumnRenewal,
	ColumnPulled,
	ColumnDL,
}

// EmptyRenewalToken is the renewal sort token of rows without a renewal
// value. It sorts after every MMDD token.
const EmptyRenewalToken = "9999"

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
