package i18n

import "github.com/dmitrijs2005/medfinder/internal/client/models"

// Key names a catalog message.
type Key string

const (
	Error                    Key = "error"
	Success                  Key = "success"
	GenericError             Key = "genericError"
	Retry                    Key = "retry"
	Cancel                   Key = "cancel"
	Confirm                  Key = "confirm"
	Delete                   Key = "delete"
	Back                     Key = "back"
	Login                    Key = "login"
	Logout                   Key = "logout"
	Register                 Key = "register"
	Email                    Key = "email"
	Password                 Key = "password"
	Username                 Key = "username"
	Guest                    Key = "guest"
	WelcomeMessage           Key = "welcomeMessage"
	WelcomeBack              Key = "welcomeBack"
	LoginRequired            Key = "loginRequired"
	LoginToAccess            Key = "loginToAccess"
	LoginFailed              Key = "loginFailed"
	RegistrationFailed       Key = "registrationFailed"
	SessionExpired           Key = "sessionExpired"
	PleaseLoginAgain         Key = "pleaseLoginAgain"
	FillAllFields            Key = "fillAllFields"
	PasswordTooShort         Key = "passwordTooShort"
	ForgotPassword           Key = "forgotPassword"
	ResetPassword            Key = "resetPassword"
	VerificationCode         Key = "verificationCode"
	AdminOnlyFeature         Key = "adminOnlyFeature"
	NotAuthorizedToDelete    Key = "notAuthorizedToDelete"
	NetworkError             Key = "networkError"
	SelectDrugAndPharmacy    Key = "selectDrugAndPharmacy"
	ReportSuccess            Key = "reportSuccess"
	ReportDeleted            Key = "reportDeleted"
	ConfirmDelete            Key = "confirmDelete"
	DeleteReportConfirmation Key = "deleteReportConfirmation"
	InStock                  Key = "inStock"
	OutOfStock               Key = "outOfStock"
	Unknown                  Key = "unknown"
	NoDrugsFound             Key = "noDrugsFound"
	NoPharmaciesFound        Key = "noPharmaciesFound"
	NoNearbyPharmacies       Key = "noNearbyPharmacies"
	NoReports                Key = "noReports"
	LocationError            Key = "locationError"
	LocationDenied           Key = "locationDenied"
	InvalidDrugID            Key = "invalidDrugId"
	InvalidPharmacyID        Key = "invalidPharmacyId"
	Currency                 Key = "currency"
	ReportedBy               Key = "reportedBy"
	LastReported             Key = "lastReported"
	LoadMore                 Key = "loadMore"
	Disclaimer               Key = "disclaimer"
	LanguageChanged          Key = "languageChanged"
	NotFound                 Key = "notFound"
)

var catalog = map[models.Language]map[Key]string{
	models.LanguageFR: {
		Error:                    "Erreur",
		Success:                  "Succès",
		GenericError:             "Une erreur s'est produite. Veuillez réessayer.",
		Retry:                    "Réessayer",
		Cancel:                   "Annuler",
		Confirm:                  "Confirmer",
		Delete:                   "Supprimer",
		Back:                     "Retour",
		Login:                    "Connexion",
		Logout:                   "Déconnexion",
		Register:                 "Inscription",
		Email:                    "E-mail",
		Password:                 "Mot de passe",
		Username:                 "Nom d'utilisateur",
		Guest:                    "Invité",
		WelcomeMessage:           "Trouvez vos médicaments dans les pharmacies proches",
		WelcomeBack:              "Bon retour, %s",
		LoginRequired:            "Connexion requise",
		LoginToAccess:            "Veuillez vous connecter pour accéder à cette fonctionnalité",
		LoginFailed:              "Échec de la connexion",
		RegistrationFailed:       "Échec de l'inscription",
		SessionExpired:           "Session expirée",
		PleaseLoginAgain:         "Veuillez vous reconnecter",
		FillAllFields:            "Veuillez remplir tous les champs",
		PasswordTooShort:         "Le mot de passe doit contenir au moins 6 caractères",
		ForgotPassword:           "Mot de passe oublié",
		ResetPassword:            "Réinitialiser le mot de passe",
		VerificationCode:         "Code de vérification : %s",
		AdminOnlyFeature:         "Seuls les administrateurs peuvent signaler la disponibilité",
		NotAuthorizedToDelete:    "Vous n'êtes pas autorisé à supprimer ce signalement",
		NetworkError:             "Erreur réseau. Vérifiez votre connexion et réessayez.",
		SelectDrugAndPharmacy:    "Veuillez sélectionner un médicament et une pharmacie",
		ReportSuccess:            "Signalement envoyé avec succès",
		ReportDeleted:            "Signalement supprimé",
		ConfirmDelete:            "Confirmer la suppression",
		DeleteReportConfirmation: "Voulez-vous vraiment supprimer ce signalement ?",
		InStock:                  "En stock",
		OutOfStock:               "Rupture de stock",
		Unknown:                  "Inconnu",
		NoDrugsFound:             "Aucun médicament trouvé",
		NoPharmaciesFound:        "Aucune pharmacie trouvée",
		NoNearbyPharmacies:       "Aucune pharmacie à proximité",
		NoReports:                "Aucun signalement",
		LocationError:            "Impossible d'obtenir votre position",
		LocationDenied:           "Permission de localisation refusée",
		InvalidDrugID:            "Identifiant de médicament invalide",
		InvalidPharmacyID:        "Identifiant de pharmacie invalide",
		Currency:                 "FCFA",
		ReportedBy:               "Signalé par %s",
		LastReported:             "Dernier signalement : %s",
		LoadMore:                 "Charger plus",
		Disclaimer:               "Les informations de disponibilité sont fournies par la communauté et peuvent être inexactes.",
		LanguageChanged:          "Langue changée en français",
		NotFound:                 "Introuvable",
	},
	models.LanguageEN: {
		Error:                    "Error",
		Success:                  "Success",
		GenericError:             "Something went wrong. Please try again.",
		Retry:                    "Retry",
		Cancel:                   "Cancel",
		Confirm:                  "Confirm",
		Delete:                   "Delete",
		Back:                     "Back",
		Login:                    "Login",
		Logout:                   "Logout",
		Register:                 "Register",
		Email:                    "Email",
		Password:                 "Password",
		Username:                 "Username",
		Guest:                    "Guest",
		WelcomeMessage:           "Find your medication in nearby pharmacies",
		WelcomeBack:              "Welcome back, %s",
		LoginRequired:            "Login required",
		LoginToAccess:            "Please log in to access this feature",
		LoginFailed:              "Login failed",
		RegistrationFailed:       "Registration failed",
		SessionExpired:           "Session expired",
		PleaseLoginAgain:         "Please log in again",
		FillAllFields:            "Please fill in all fields",
		PasswordTooShort:         "Password must be at least 6 characters",
		ForgotPassword:           "Forgot password",
		ResetPassword:            "Reset password",
		VerificationCode:         "Verification code: %s",
		AdminOnlyFeature:         "Only administrators can report availability",
		NotAuthorizedToDelete:    "You are not authorized to delete this report",
		NetworkError:             "Network error. Check your connection and try again.",
		SelectDrugAndPharmacy:    "Please select a drug and a pharmacy",
		ReportSuccess:            "Report submitted successfully",
		ReportDeleted:            "Report deleted",
		ConfirmDelete:            "Confirm deletion",
		DeleteReportConfirmation: "Are you sure you want to delete this report?",
		InStock:                  "In stock",
		OutOfStock:               "Out of stock",
		Unknown:                  "Unknown",
		NoDrugsFound:             "No drugs found",
		NoPharmaciesFound:        "No pharmacies found",
		NoNearbyPharmacies:       "No pharmacies nearby",
		NoReports:                "No reports",
		LocationError:            "Unable to get your location",
		LocationDenied:           "Location permission denied",
		InvalidDrugID:            "Invalid drug ID",
		InvalidPharmacyID:        "Invalid pharmacy ID",
		Currency:                 "FCFA",
		ReportedBy:               "Reported by %s",
		LastReported:             "Last reported: %s",
		LoadMore:                 "Load more",
		Disclaimer:               "Availability information is crowdsourced and may be inaccurate.",
		LanguageChanged:          "Language changed to English",
		NotFound:                 "Not found",
	},
}

// StatusKey returns the catalog key describing s.
func StatusKey(s models.Status) Key {
	switch s {
	case models.StatusInStock:
		return InStock
	case models.StatusOutOfStock:
		return OutOfStock
	default:
		return Unknown
	}
}
