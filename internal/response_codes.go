package internal

const (
	responseAuthorized = "Transaction authorized for payments and preauthorizations"
	responseRefused    = "Transaction refused"
)

// responseMessages maps the outcome codes of the modern generation above the
// authorized range.
var responseMessages = map[int]string{
	900:  "Transaction authorized for returns and confirmations",
	101:  "Expired card",
	102:  "Temporary exception card or on suspicion of fraud",
	106:  "PIN tries exceeded",
	125:  "Not effective card",
	129:  "Wrong security code (CVV2/CVC2)",
	180:  "Card out of the service",
	184:  "Error on owner authentication",
	190:  "Denied without specific reasons",
	191:  "Wrong expiration date",
	202:  "Temporary or emergency card on suspicion of withdrawal card fraud",
	904:  "Commerce not affiliated to FUC",
	909:  "System error",
	912:  "Issuer not available",
	913:  "Order duplicated",
	944:  "Wrong session",
	950:  "Return operation not allowed",
	9064: "Wrong number of places in the card",
	9078: "Not allowed operation type for that card",
	9093: "Nonexistent card",
	9094: "International servers are rejected",
	9104: "Commerce with \"owner safe\" and the owner without secure shopping key",
	9218: "Commerce does not allow safe operations per input",
	9253: "Card does not do the check-digit",
	9256: "The commerce can not to make pre-authorization",
	9257: "This card does not allow preauthorization operations",
	9261: "Operation stopped for exceeding the control of restrictions on entry to the SIS",
	9912: "Issuer not available",
	9913: "Error in commerce confirmation sent to the Virtual TPV",
	9914: "\"KO\" commerce confirmation",
	9915: "Payment canceled by user",
	9928: "Cancellation of deferred authorization by SIS",
	9929: "Cancellation of deferred authorization by the commerce",
	9997: "Another transaction is being processed in SIS with the same card",
	9998: "Operation in card data request process",
	9999: "Operation has been redirected issuer to authenticate",
}

// legacyResponseMessages is the table of the legacy generation, which
// predates the late additions of the modern one.
var legacyResponseMessages = func() map[int]string {
	messages := make(map[int]string, len(responseMessages))
	for code, message := range responseMessages {
		messages[code] = message
	}
	for _, code := range []int{202, 9928, 9929, 9997, 9998, 9999} {
		delete(messages, code)
	}
	return messages
}()

// translateResponse maps an outcome code to a message. Total by construction:
// any code up to 99 is authorized and any code outside the table is a generic
// refusal.
func translateResponse(code int, messages map[int]string) string {
	if code <= 99 {
		return responseAuthorized
	}
	if message, ok := messages[code]; ok {
		return message
	}
	return responseRefused
}
