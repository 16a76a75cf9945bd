package entity

// Release is the subset of a GitHub release the download redirector needs.
type Release struct {
	TagName string
	HTMLURL string
	Assets  []ReleaseAsset
}

type ReleaseAsset struct {
	Name        string
	DownloadURL string
	ContentType string
}

// ReleaseDownload is the resolved download target for one repository.
// When Success is false, Download points at the repository's releases page.
type ReleaseDownload struct {
	Repo     string `json:"repo"`
	Tag      string `json:"tag,omitempty"`
	Success  bool   `json:"success"`
	Download string `json:"download"`
}
