package handlers

import "github.com/atomicstack/servarr-tui/internal/radarr"

type editMovieHandler struct{}

func (editMovieHandler) Blocks() radarr.BlockSet { return radarr.EditMovieBlocks }

func editMovieForm(data *radarr.Data) form {
	return form{
		prompt:  radarr.EditMoviePrompt,
		confirm: radarr.EditMovieConfirmPrompt,
		event:   radarr.EditMovie,
		selects: map[radarr.Block]scroller{
			radarr.EditMovieSelectMinimumAvailability: &data.MinimumAvailabilityList,
			radarr.EditMovieSelectQualityProfile:      &data.QualityProfileList,
		},
		inputs: map[radarr.Block]*radarr.ScrollText{
			radarr.EditMoviePathInput: &data.EditPath,
			radarr.EditMovieTagsInput: &data.EditTags,
		},
		toggles: map[radarr.Block]func(){
			radarr.EditMovieToggleMonitored: flip(data.EditMonitored),
		},
		reset: data.ResetAddEditMediaFields,
	}
}

func (editMovieHandler) Input(c *Context) *radarr.ScrollText {
	return editMovieForm(c.Data).input(c.Block)
}

func (editMovieHandler) Handle(c *Context) {
	handleForm(c, editMovieForm(c.Data))
}

type editCollectionHandler struct{}

func (editCollectionHandler) Blocks() radarr.BlockSet { return radarr.EditCollectionBlocks }

func editCollectionForm(data *radarr.Data) form {
	return form{
		prompt:  radarr.EditCollectionPrompt,
		confirm: radarr.EditCollectionConfirmPrompt,
		event:   radarr.EditCollection,
		selects: map[radarr.Block]scroller{
			radarr.EditCollectionSelectMinimumAvailability: &data.MinimumAvailabilityList,
			radarr.EditCollectionSelectQualityProfile:      &data.QualityProfileList,
		},
		inputs: map[radarr.Block]*radarr.ScrollText{
			radarr.EditCollectionRootFolderPathInput: &data.EditPath,
		},
		toggles: map[radarr.Block]func(){
			radarr.EditCollectionToggleMonitored:   flip(data.EditMonitored),
			radarr.EditCollectionToggleSearchOnAdd: flip(data.EditSearchOnAdd),
		},
		reset: data.ResetAddEditMediaFields,
	}
}

func (editCollectionHandler) Input(c *Context) *radarr.ScrollText {
	return editCollectionForm(c.Data).input(c.Block)
}

func (editCollectionHandler) Handle(c *Context) {
	handleForm(c, editCollectionForm(c.Data))
}

type deleteMovieHandler struct{}

func (deleteMovieHandler) Blocks() radarr.BlockSet { return radarr.DeleteMovieBlocks }

func (deleteMovieHandler) Handle(c *Context) {
	data := c.Data
	handleForm(c, form{
		prompt:  radarr.DeleteMoviePrompt,
		confirm: radarr.DeleteMovieConfirmPrompt,
		event:   radarr.DeleteMovie,
		toggles: map[radarr.Block]func(){
			radarr.DeleteMovieToggleDeleteFile:       flip(&data.DeleteMovieFiles),
			radarr.DeleteMovieToggleAddListExclusion: flip(&data.AddListExclusion),
		},
		reset: data.ResetDeleteMoviePreferences,
	})
}
