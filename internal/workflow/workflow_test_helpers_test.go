package workflow

import (
	"go.temporal.io/sdk/testsuite"

	"github.com/Think-iT-Labs/jad/internal/activity"
)

// registerActivities registers the activity structs with the test workflow
// environment so parameter and return types can be deserialized correctly.
// All activities are mocked via OnActivity in the tests, but the framework
// still needs the type information.
func registerActivities(env *testsuite.TestWorkflowEnvironment) {
	env.RegisterActivity(&activity.DataRequest{})
	env.RegisterActivity(&activity.Onboarding{})
}
