package valueobject

import "github.com/oksasatya/go-course-marketplace/internal/domain"

const (
	courseSubtitleMaxLength    = 500
	lessonTitleMaxLength       = 255
	lessonDescriptionMaxLength = 65535
	lessonVideoURLMaxLength    = 500

	CourseRatingMin = 1
	CourseRatingMax = 5
)

type (
	CourseID       string
	LessonID       string
	CourseRatingID string
)

func NewCourseID(v string) (CourseID, error) { return parseULID[CourseID]("course id", v) }
func NewLessonID(v string) (LessonID, error) { return parseULID[LessonID]("lesson id", v) }
func NewCourseRatingID(v string) (CourseRatingID, error) {
	return parseULID[CourseRatingID]("course rating id", v)
}

// CoursePrice is the list price of a course. Free courses are allowed.
type CoursePrice float64

func NewCoursePrice(v float64) (CoursePrice, error) {
	if err := nonNegativeFloat("course price", v); err != nil {
		return 0, err
	}
	return CoursePrice(v), nil
}

func (p CoursePrice) Float64() float64 { return float64(p) }

type CourseAverageRating float64

func NewCourseAverageRating(v float64) (CourseAverageRating, error) {
	if err := finite("course average rating", v); err != nil {
		return 0, err
	}
	if v < 0 || v > CourseRatingMax {
		return 0, domain.Validationf("course average rating must be between 0 and %d, got: %f", CourseRatingMax, v)
	}
	return CourseAverageRating(v), nil
}

func (r CourseAverageRating) Float64() float64 { return float64(r) }

type CourseTotalRatings int

func NewCourseTotalRatings(v int) (CourseTotalRatings, error) {
	if err := nonNegativeInt("course total ratings", v); err != nil {
		return 0, err
	}
	return CourseTotalRatings(v), nil
}

type CourseSubtitle string

func NewCourseSubtitle(v string) (CourseSubtitle, error) {
	if err := maxLength("course subtitle", v, courseSubtitleMaxLength); err != nil {
		return "", err
	}
	return CourseSubtitle(v), nil
}

// CourseRatingValue is a single star rating left by a student.
type CourseRatingValue int

func NewCourseRatingValue(v int) (CourseRatingValue, error) {
	if v < CourseRatingMin || v > CourseRatingMax {
		return 0, domain.Validationf("course rating must be between %d and %d, got: %d", CourseRatingMin, CourseRatingMax, v)
	}
	return CourseRatingValue(v), nil
}

type LessonTitle string

func NewLessonTitle(v string) (LessonTitle, error) {
	if err := maxLength("lesson title", v, lessonTitleMaxLength); err != nil {
		return "", err
	}
	return LessonTitle(v), nil
}

type LessonDescription string

func NewLessonDescription(v string) (LessonDescription, error) {
	if err := maxLength("lesson description", v, lessonDescriptionMaxLength); err != nil {
		return "", err
	}
	return LessonDescription(v), nil
}

type LessonVideoURL string

func NewLessonVideoURL(v string) (LessonVideoURL, error) {
	if err := maxLength("lesson video url", v, lessonVideoURLMaxLength); err != nil {
		return "", err
	}
	return LessonVideoURL(v), nil
}

// LessonOrder is the zero-based position of a lesson inside its course.
type LessonOrder int

func NewLessonOrder(v int) (LessonOrder, error) {
	if err := nonNegativeInt("lesson order", v); err != nil {
		return 0, err
	}
	return LessonOrder(v), nil
}
