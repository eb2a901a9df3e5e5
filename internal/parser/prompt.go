package parser

import (
	"fmt"
	"strings"
	"time"
)

// buildPrompt assembles the full instruction document for the completion
// oracle. Everything the oracle needs is embedded: the catalog, the alias
// tables, per-field extraction rules, and the current Philippine date so
// relative expressions like "pickup tomorrow" resolve to calendar dates.
func buildPrompt(message string, now time.Time) string {
	currentDate := now.Format("January 2, 2006")
	currentDay := now.Weekday().String()

	var b strings.Builder
	b.WriteString("Parse this order message into valid JSON only (no extra text). Follow these exact rules:\n\n")

	b.WriteString(`PRODUCT CATALOG:
- P-CHZ (Pouch Cheese) - 150 pesos
- P-SC (Pouch Sour Cream) - 150 pesos
- P-BBQ (Pouch BBQ) - 150 pesos
- P-OG (Pouch Original) - 150 pesos
- 2L-CHZ (Tub Cheese) - 290 pesos
- 2L-SC (Tub Sour Cream) - 290 pesos
- 2L-BBQ (Tub BBQ) - 290 pesos
- 2L-OG (Tub Original) - 290 pesos

ALIASES:
- Flavors: cheese/cheesy/keso=CHZ, sour cream/sour/sc=SC, bbq/barbeque/barbecue=BBQ, original/plain/orig=OG
- Sizes: pouch/maliit/100g=P-, tub/malaki/200g=2L-
- Numbers: isa/isang=1, dalawa=2, tatlo=3, apat=4, lima=5, anim=6, pito=7, walo=8, siyam=9, sampu=10

PARSING RULES:
- customer_name: extract name, title case
- payment_method: "Gcash"|"BPI"|"Maya"|"Cash"|"BDO"|"Others"|null
- customer_location: "Quezon City" (from QC/quezon city) | "Paranaque" | null
- payment_status: "Paid" if payment confirmed, "Unpaid" if not mentioned
- discount_percentage: number (%), null if discount is peso amount or none
- discount_amount: number (pesos), null if discount is percentage or none
- shipping_fee: extract peso amount from "sf/shipping/delivery/padala/hatid [number]"
- items: array of {"product_code": string, "quantity": number}
- confidence: 0-1 score
- notes: extract additional information not in other fields (contact details, pickup/delivery dates with specific dates in Philippine timezone, special instructions, timing requests, etc.) or null if none

PAYMENT STATUS DETECTION:
- "paid", "bayad na", "nabayad na", "settled", "payment done", "paid already" means "Paid"
- "paid via gcash", "paid gcash", "gcash paid", "transferred already" means "Paid"
- "payment received", "received payment", "confirmed payment" means "Paid"
- "paid cash", "cash paid", "transferred", "sent payment" means "Paid"
- If no payment status mentioned, use "Unpaid" (default)

`)

	fmt.Fprintf(&b, `NOTES EXTRACTION:
- Extract contact details (phone numbers, alternative contacts)
- Convert relative dates to specific dates using Philippine timezone (Asia/Manila)
- Today's reference date: %[1]s (%[2]s)
- Calculate dates relative to %[2]s, %[1]s
- Examples: "pickup tomorrow" should be calculated as the day after %[2]s
- Examples: "deliver Friday" means the next occurring Friday from %[2]s
- Examples: "needed next week" means the following week from %[1]s
- Include delivery instructions, special requests, timing requirements
- If no additional information found, set notes to null

`, currentDate, currentDay)

	b.WriteString(`MODIFICATIONS (chronological order):
- Process add/remove/replace commands step by step
- "add pa/pa-add/dagdag/plus/at saka/pati/kasama" = add
- "patanggal/tanggal/remove/wag na/cancel/hindi na" = remove
- "replace/pareplace/palit/change to/instead of" = remove old, add new
- Removed items must NOT appear in final items array

MESSAGE TO PARSE:
`)
	b.WriteString(message)
	b.WriteString(`

Return only valid JSON matching this schema:
{
  "customer_name": string|null,
  "payment_method": string|null,
  "customer_location": string|null,
  "payment_status": "Paid"|"Unpaid",
  "discount_percentage": number|null,
  "discount_amount": number|null,
  "shipping_fee": number|null,
  "items": [{"product_code": string, "quantity": number}],
  "confidence": number,
  "notes": string|null
}`)

	return b.String()
}
