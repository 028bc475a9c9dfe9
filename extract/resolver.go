package extract

import "github.com/tnwlsdldkdlel/crawling"

// ResolveContentFrame returns the first frame whose URL the classifier
// accepts. Frame order is assumed stable and the content frame unique per
// the target platform's layout, so the first qualifying frame wins. The
// second return value is false when no frame qualifies.
func ResolveContentFrame(frames []crawling.Frame, classifier crawling.FrameClassifier) (crawling.Frame, bool) {
	for _, frame := range frames {
		if classifier.Matches(frame.URL) {
			return frame, true
		}
	}
	return crawling.Frame{}, false
}
