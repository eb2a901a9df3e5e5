package sheets

import "github.com/ninamercado/snackflow/internal/model"

// Fixed column assignments in the ORDER worksheet.
const (
	colOrderDate     = "C"
	colCustomerName  = "D"
	colSoldBy        = "E"
	colPaymentMethod = "G"
	colPaymentStatus = "H"
	colNotes         = "J"
	colOrderType     = "K"
	colShippingFee   = "Z"
	colDiscount      = "AA"
)

// productColumns maps product codes to their quantity columns.
var productColumns = map[string]string{
	"P-CHZ":  "N",
	"P-SC":   "O",
	"P-BBQ":  "P",
	"P-OG":   "Q",
	"2L-CHZ": "T",
	"2L-SC":  "U",
	"2L-BBQ": "V",
	"2L-OG":  "W",
}

// Row scanning bounds for empty-row discovery. The fetched range D:W is
// 20 columns wide; product cells sit at these offsets within it.
const (
	firstDataRow = 5
	lastDataRow  = 2422
	scanWidth    = 20
)

var productOffsets = []int{10, 11, 12, 13, 16, 17, 18, 19} // N,O,P,Q,T,U,V,W within D..W

// sellerByLocation assigns the responsible seller for each delivery area.
var sellerByLocation = map[string]string{
	model.LocationQuezonCity: "Ferdie",
	model.LocationParanaque:  "Nina",
}
