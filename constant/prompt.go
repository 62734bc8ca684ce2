package constant

// Messages shown when the generative API cannot serve a request.
const (
	CatalogFetchFailed = "Failed to fetch episode list. Please check your API key and try again."
	SummaryUnavailable = "Could not generate a summary for this episode at this time."
)

// YoutubeSearchURL is the base of the best-effort video search link.
const YoutubeSearchURL = "https://www.youtube.com/results"
