package locale

// Labels holds every fixed string printed on the CV.
type Labels struct {
	Contact        string
	Location       string
	Phone          string
	Email          string
	DrivingLicense string
	BirthDate      string
	Social         string
	PortfolioQR    string
	Skills         string
	Languages      string
	Profile        string
	Experience     string
	Education      string
}

var labels = map[Lang]Labels{
	ES: {
		Contact:        "Contacto",
		Location:       "Ubicación",
		Phone:          "Teléfono",
		Email:          "Email",
		DrivingLicense: "Carnet de conducir",
		BirthDate:      "Fecha de nacimiento",
		Social:         "Redes",
		PortfolioQR:    "Mi Portfolio Web",
		Skills:         "Competencias",
		Languages:      "Idiomas",
		Profile:        "Perfil Profesional",
		Experience:     "Experiencia Laboral",
		Education:      "Formación",
	},
	EN: {
		Contact:        "Contact",
		Location:       "Location",
		Phone:          "Phone",
		Email:          "Email",
		DrivingLicense: "Driving licence",
		BirthDate:      "Date of birth",
		Social:         "Social",
		PortfolioQR:    "My Portfolio Website",
		Skills:         "Skills",
		Languages:      "Languages",
		Profile:        "Professional Profile",
		Experience:     "Work Experience",
		Education:      "Education",
	},
}

// LabelsFor returns the label set for lang, falling back to the base language.
func LabelsFor(lang Lang) Labels {
	if l, ok := labels[lang]; ok {
		return l
	}
	return labels[Default]
}
