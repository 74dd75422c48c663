package incubator_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/PadsterH2012/Idea-Incubator/pkg/incubatorsdk"
	"github.com/stretchr/testify/require"
)

func TestProjectLifecycle(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := incubatorsdk.NewSDKClient(baseURL)
	session := registerAndLogin(t, client, "alice", "Password123!")

	created, err := session.CreateProject(ctx, incubatorsdk.ProjectRequest{
		Name:        "Solar Kettle",
		Description: "Boil water with mirrors",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := session.GetProject(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Solar Kettle", got.Name)
	require.Equal(t, "Boil water with mirrors", got.Description)

	updated, err := session.UpdateProject(ctx, created.ID, incubatorsdk.ProjectRequest{
		Name:        "Solar Kettle Mk2",
		Description: "Now with lenses",
	})
	require.NoError(t, err)
	require.Equal(t, "Solar Kettle Mk2", updated.Name)

	list, err := session.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list.Projects, 1)
	require.Equal(t, "Solar Kettle Mk2", list.Projects[0].Name)

	require.NoError(t, session.DeleteProject(ctx, created.ID))

	_, err = session.GetProject(ctx, created.ID)
	assertAPIStatus(t, err, http.StatusNotFound, "Deleted project should be gone")

	list, err = session.ListProjects(ctx)
	require.NoError(t, err)
	require.Empty(t, list.Projects)
}

func TestProjectValidationOverHTTP(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := incubatorsdk.NewSDKClient(baseURL)
	session := registerAndLogin(t, client, "bob", "Password123!")

	_, err := session.CreateProject(ctx, incubatorsdk.ProjectRequest{Name: ""})
	assertAPIStatus(t, err, http.StatusBadRequest, "Empty project name should be rejected")
}

func TestProjectIsolationBetweenUsers(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := incubatorsdk.NewSDKClient(baseURL)

	owner := registerAndLogin(t, client, "owner", "Password123!")
	intruder := registerAndLogin(t, client, "intruder", "Password123!")

	project, err := owner.CreateProject(ctx, incubatorsdk.ProjectRequest{Name: "Private"})
	require.NoError(t, err)

	// Every cross-user access answers the same 404 a nonexistent id would.
	_, err = intruder.GetProject(ctx, project.ID)
	assertAPIStatus(t, err, http.StatusNotFound, "Foreign project read")

	_, err = intruder.UpdateProject(ctx, project.ID, incubatorsdk.ProjectRequest{Name: "Stolen"})
	assertAPIStatus(t, err, http.StatusNotFound, "Foreign project update")

	err = intruder.DeleteProject(ctx, project.ID)
	assertAPIStatus(t, err, http.StatusNotFound, "Foreign project delete")

	list, err := intruder.ListProjects(ctx)
	require.NoError(t, err)
	require.Empty(t, list.Projects)

	// And none of that touched the owner's copy.
	got, err := owner.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, "Private", got.Name)
}

func TestProjectMalformedID(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := incubatorsdk.NewSDKClient(baseURL)
	session := registerAndLogin(t, client, "carol", "Password123!")

	_, err := session.GetProject(ctx, "not-a-valid-id")
	assertAPIStatus(t, err, http.StatusNotFound, "Malformed id should look like a missing project")
}
