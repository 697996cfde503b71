package handler

import (
	"github.com/gofiber/fiber/v2"

	"studyaid/internal/service"
)

// ListStudyGuides godoc
// @Summary List study guides
// @Tags study-guides
// @Produce json
// @Success 200 {array} model.StudyGuide
// @Router /api/study-guides [get]
func ListStudyGuides(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		guides, err := svc.ListStudyGuides(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(guides)
	}
}

// GenerateStudyGuide godoc
// @Summary Generate a study guide for a document
// @Tags study-guides
// @Accept json
// @Produce json
// @Param body body service.GenerateStudyGuideInput true "Document to summarize"
// @Success 201 {object} model.StudyGuide
// @Failure 404 {object} errorPayload
// @Router /api/study-guides [post]
func GenerateStudyGuide(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.GenerateStudyGuideInput
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
		guide, err := svc.GenerateStudyGuide(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(guide)
	}
}

// ListMockTests godoc
// @Summary List mock tests
// @Tags mock-tests
// @Produce json
// @Success 200 {array} model.MockTest
// @Router /api/mock-tests [get]
func ListMockTests(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tests, err := svc.ListMockTests(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(tests)
	}
}

// GenerateMockTest godoc
// @Summary Generate a practice test for a document
// @Tags mock-tests
// @Accept json
// @Produce json
// @Param body body service.GenerateMockTestInput true "Document and question count"
// @Success 201 {object} model.MockTest
// @Failure 404 {object} errorPayload
// @Router /api/mock-tests [post]
func GenerateMockTest(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.GenerateMockTestInput
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
		test, err := svc.GenerateMockTest(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(test)
	}
}

// ListTestResults godoc
// @Summary List submitted test results
// @Tags test-results
// @Produce json
// @Success 200 {array} model.TestResult
// @Router /api/test-results [get]
func ListTestResults(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		results, err := svc.ListTestResults(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(results)
	}
}

// SubmitTestResult godoc
// @Summary Score an attempt at a mock test
// @Tags test-results
// @Accept json
// @Produce json
// @Param body body service.SubmitTestResultInput true "Chosen option per question"
// @Success 201 {object} model.TestResult
// @Failure 404 {object} errorPayload
// @Router /api/test-results [post]
func SubmitTestResult(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.SubmitTestResultInput
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
		res, err := svc.SubmitTestResult(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
