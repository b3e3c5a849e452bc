package api

// operation names a client call for logs and error messages.
type operation struct {
	name     string
	failure  string // used when the backend sent no message
	activity string // completes "network error during ..."
}

var (
	opRegister       = operation{"register", "Registration failed", "registration"}
	opLogin          = operation{"login", "Login failed", "login"}
	opForgotPassword = operation{"forgotPassword", "Password reset request failed", "password reset request"}
	opResetPassword  = operation{"resetPassword", "Password reset failed", "password reset"}

	opSearchDrugs      = operation{"searchDrugs", "Failed to search drugs", "drug search"}
	opGetDrug          = operation{"getDrug", "Failed to fetch drug", "drug lookup"}
	opDrugAvailability = operation{"drugAvailability", "Failed to fetch drug availability", "drug availability lookup"}

	opSearchPharmacies     = operation{"searchPharmacies", "Failed to search pharmacies", "pharmacy search"}
	opNearbyPharmacies     = operation{"nearbyPharmacies", "Failed to fetch nearby pharmacies", "nearby pharmacy lookup"}
	opGetPharmacy          = operation{"getPharmacy", "Failed to fetch pharmacy", "pharmacy lookup"}
	opPharmacyAvailability = operation{"pharmacyAvailability", "Failed to fetch pharmacy availability", "pharmacy availability lookup"}

	opCreateReport  = operation{"createReport", "Failed to create report", "report creation"}
	opMyReports     = operation{"myReports", "Failed to fetch user reports", "user report lookup"}
	opUpdateReport  = operation{"updateReport", "Failed to update report", "report update"}
	opDeleteReport  = operation{"deleteReport", "Failed to delete report", "report deletion"}
	opConfirmReport = operation{"confirmReport", "Failed to confirm report", "report confirmation"}
	opDisputeReport = operation{"disputeReport", "Failed to dispute report", "report dispute"}
)

func (o operation) networkMessage() string {
	return "network error during " + o.activity
}
