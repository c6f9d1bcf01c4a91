package common

// PublishedFileName is the fixed logical name of the published CV.
const PublishedFileName = "cv_publico.pdf"

// DefaultDownloadName is used when the profile carries no usable name.
const DefaultDownloadName = "CV_Portfolio.pdf"
