package content

import "grlla/internal/i18n"

var transformationLabel = i18n.Text{En: "2 MONTHS TRANSFORMATION", Ar: "تحول شهرين"}

var successImages = []string{
	"1-1.png", "1-2.png", "1-3.png", "1-4.png", "1-5.png",
	"1-6.png", "1-7.png", "1-8.png", "1-9.png",
}

const successImageBase = "assets/images/Trans/"

// Marquee lines shown under the hero, index-paired across languages.
var tickerLines = []i18n.Text{
	{En: "Live Healthy •", Ar: "عش بصحة •"},
	{En: "Train Smart •", Ar: "تدرب بذكاء •"},
	{En: "Your Path to Strength and Confidence Starts Here •", Ar: "طريقك إلى القوة والثقة يبدأ هنا •"},
	{En: "Stay Strong •", Ar: "ابق قويًا •"},
}

// TestimonialsView pairs the two carousels on the landing page.
type TestimonialsView struct {
	Success CarouselView `json:"success"`
	Reviews CarouselView `json:"reviews"`
}

// RenderTestimonials builds the success-story slides and the review carousel
// parameters. The review slides themselves live in static markup; the
// carousel capability here only needs the configuration.
func RenderTestimonials(lang string) TestimonialsView {
	slides := make([]SlideView, 0, len(successImages))
	for _, img := range successImages {
		slides = append(slides, SlideView{
			Image: successImageBase + img,
			Label: transformationLabel.In(lang),
		})
	}
	return TestimonialsView{
		Success: CarouselView{
			Slides:        slides,
			SlidesPerView: 1,
			SpaceBetween:  10,
			Loop:          true,
			AutoplayMs:    3000,
			Pagination:    true,
			Breakpoints: []Breakpoint{
				{MinWidth: 640, SlidesPerView: 2},
				{MinWidth: 968, SlidesPerView: 3},
			},
		},
		Reviews: CarouselView{
			SlidesPerView: 1,
			SpaceBetween:  30,
			Loop:          true,
			AutoplayMs:    4000,
			Navigation:    true,
			Pagination:    true,
		},
	}
}

// Ticker localizes the marquee lines.
func Ticker(lang string) []string {
	out := make([]string, 0, len(tickerLines))
	for _, line := range tickerLines {
		out = append(out, line.In(lang))
	}
	return out
}
