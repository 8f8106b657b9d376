package store

import "gen-archive-go/internal/model"

// SeedPosts 返回内置演示数据集：未配置远程表格且没有本地投稿时，
// 画廊用它保证开箱即用。每个类别至少一条。
func SeedPosts() []model.Post {
	return []model.Post{
		{
			ID:        "t1",
			Title:     "Транскрипция скорописи XIX века",
			Author:    "ArchiveHunter_99",
			Category:  model.CategoryTranscription,
			ModelName: "Gemini 1.5 Pro",
			Prompt:    "Транскрибируй следующее рукописное письмо 1885 года. Сохрани оригинальную орфографию.",
			InputContent: "https://images.unsplash.com/photo-1586075010923-2dd45eeed858?w=600",
			InputAttachments: []model.Attachment{
				{ID: "att_t1", Type: model.AttachmentImage, URL: "https://images.unsplash.com/photo-1586075010923-2dd45eeed858?w=600", Name: "letter_1885.jpg"},
			},
			OutputContent: "Душа моя,\nСегодня утром я гулял с книгой в руке, но, как обычно, был занят только тобой.",
			Reviews: []model.Review{
				{ID: "r_t1_1", Author: "GenealogyFan", Text: "Модель отлично справилась с завитками букв!", Rating: 5, CreatedAt: "2023-10-27T10:00:00Z"},
			},
			CreatedAt: "2023-10-27T09:00:00Z",
		},
		{
			ID:        "t2",
			Title:     "Перепись населения 1897 года",
			Author:    "Ivan_History",
			Category:  model.CategoryTranscription,
			ModelName: "GPT-4o",
			Prompt:    "Преобразуй этот скан листа переписи 1897 года в JSON формат.",
			InputContent: "Скан рукописной таблицы с именами крестьян (Тобольская губерния).",
			OutputContent: "[{\"ФИО\": \"Смирнов Иван Петрович\", \"Возраст\": 45, \"Сословие\": \"Крестьянин\"}]",
			Reviews: []model.Review{
				{ID: "r_t2_1", Author: "DevDev", Text: "Идеальный JSON, сразу в базу загнал.", Rating: 5, CreatedAt: "2023-11-05T12:00:00Z"},
			},
			CreatedAt: "2023-11-05T10:00:00Z",
		},
		{
			ID:        "r1",
			Title:     "Реставрация поврежденного портрета",
			Author:    "RootsSeeker",
			Category:  model.CategoryRestoration,
			ModelName: "Stable Diffusion XL",
			Prompt:    "Убери царапины и пыль. Не раскрашивай.",
			InputContent:  "https://images.unsplash.com/photo-1544550227-edfa14cb7266?w=600&grayscale&blur=2",
			OutputContent: "https://images.unsplash.com/photo-1544550227-edfa14cb7266?w=600&grayscale",
			Reviews: []model.Review{
				{ID: "rev_r1_1", Author: "PhotoFixer", Text: "Текстура кожи сохранена.", Rating: 5, CreatedAt: "2023-10-26T15:00:00Z"},
			},
			CreatedAt: "2023-10-26T14:30:00Z",
		},
		{
			ID:        "r2",
			Title:     "Колоризация свадебного фото 1920-х",
			Author:    "HistoryColorist",
			Category:  model.CategoryRestoration,
			ModelName: "Gemini 2.5 Flash",
			Prompt:    "Раскрась фото. Платье кремовое, костюм серый.",
			InputContent:  "https://images.unsplash.com/photo-1515934751635-c81c6bc9a2d8?w=600&grayscale",
			OutputContent: "https://images.unsplash.com/photo-1515934751635-c81c6bc9a2d8?w=600",
			Reviews: []model.Review{
				{ID: "rev_r2_1", Author: "ColorPro", Text: "Слишком ярко для 20-х годов.", Rating: 3, CreatedAt: "2023-10-28T11:20:00Z"},
			},
			CreatedAt: "2023-10-28T10:15:00Z",
		},
		{
			ID:        "a1",
			Title:     "Интервью с бабушкой (1995)",
			Author:    "FamilyHistorian",
			Category:  model.CategoryAudio,
			ModelName: "Whisper v3",
			Prompt:    "Расшифруй. Раздели по спикерам.",
			InputContent: "Аудиокассета 90-х, фоновый шум.",
			InputAttachments: []model.Attachment{
				{ID: "att_a1", Type: model.AttachmentAudio, URL: "https://actions.google.com/sounds/v1/ambiences/coffee_shop.ogg", Name: "interview_1995.mp3"},
			},
			OutputContent: "Спикер 1: Расскажите, как вы переехали?\nСпикер 2: Это было в сорок пятом...",
			Reviews: []model.Review{
				{ID: "rev_a1_1", Author: "AudioGeek", Text: "Идеально.", Rating: 5, CreatedAt: "2023-11-01T14:00:00Z"},
			},
			CreatedAt: "2023-11-01T12:00:00Z",
		},
		{
			ID:        "tr1",
			Title:     "Перевод метрики с польского",
			Author:    "PolishRoots",
			Category:  model.CategoryTranslation,
			ModelName: "Claude 3.5 Sonnet",
			Prompt:    "Переведи запись о рождении 1862 года с польского на русский. Имена оставь в оригинальном написании.",
			InputContent:  "Działo się w mieście Lublinie dnia piętnastego marca...",
			OutputContent: "Состоялось в городе Люблине пятнадцатого марта... явился Ян Ковальский...",
			Reviews:       []model.Review{},
			CreatedAt:     "2023-11-12T09:00:00Z",
		},
		{
			ID:        "id1",
			Title:     "Датировка фото по униформе",
			Author:    "WarArchives",
			Category:  model.CategoryIdentification,
			ModelName: "GPT-4o",
			Prompt:    "Определи род войск и временной период по форме на фотографии.",
			InputContent:  "https://images.unsplash.com/photo-1580130775562-0ef92da028de?w=600",
			OutputContent: "Форма соответствует пехотному полку, период 1907-1914 гг. (защитное обмундирование образца 1907 года).",
			Reviews: []model.Review{
				{ID: "rev_id1_1", Author: "UniformExpert", Text: "Период определён верно, полк спорный.", Rating: 4, CreatedAt: "2023-11-15T10:00:00Z"},
			},
			CreatedAt: "2023-11-14T18:00:00Z",
		},
		{
			ID:        "inf1",
			Title:     "Семейное древо в Mermaid JS",
			Author:    "CodeRoots",
			Category:  model.CategoryInfographic,
			ModelName: "Claude 3.5 Sonnet",
			Prompt:    "Проанализируй текст и создай код диаграммы Mermaid JS (graph TD) для визуализации семейных связей.",
			InputContent:  "Иван (1850-1920) женился на Марье (1855-1930), их дети: Пётр и Анна...",
			OutputContent: "graph TD\n  Ivan[Иван 1850-1920] --> Petr\n  Ivan --> Anna\n  Marya(Марья 1855-1930) --> Petr\n  Marya --> Anna",
			Reviews:       []model.Review{},
			CreatedAt:     "2023-11-20T11:00:00Z",
		},
	}
}

// SeedShowcases 返回首次启动时填充的橱窗条目。
func SeedShowcases() []model.ShowcaseItem {
	return []model.ShowcaseItem{
		{
			ID:          "s1",
			Title:       "RetroScan AI",
			Description: "Веб-приложение для пакетной обработки старых фотографий. Автоматически удаляет трещины и улучшает четкость лиц.",
			URL:         "https://example.com/retroscan",
			ImageURL:    "https://images.unsplash.com/photo-1555421689-d68471e189f2?w=600",
			Author:      "DevTeamX",
			Tags:        []string{"Веб-сервис", "Реставрация"},
			CreatedAt:   "2023-11-01",
		},
		{
			ID:          "s2",
			Title:       "Genealogy GPT Assistant",
			Description: "Специализированный Custom GPT для анализа метрических книг. Извлекает имена, даты и связи в JSON формат.",
			URL:         "https://chat.openai.com/g/g-example",
			ImageURL:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=600",
			Author:      "AiGenealogist",
			Tags:        []string{"ChatGPT", "Промт-инжиниринг"},
			CreatedAt:   "2023-11-25",
		},
		{
			ID:          "s3",
			Title:       "CursiveReader Bot",
			Description: "Телеграм-бот, который читает русскую скоропись XVII-XVIII веков. Отправь фото — получи текст.",
			URL:         "https://t.me/example_bot",
			ImageURL:    "https://images.unsplash.com/photo-1614036634955-457fa315fb6f?w=600",
			Author:      "RusArchivesMod",
			Tags:        []string{"Telegram Bot", "Транскрипция"},
			CreatedAt:   "2023-12-10",
		},
	}
}

// PromptTemplates 返回提示词库的固定模板集。
func PromptTemplates() []model.PromptTemplate {
	return []model.PromptTemplate{
		{
			ID:         "p1",
			Title:      "Базовая транскрипция",
			Category:   model.CategoryTranscription,
			Text:       "Транскрибируй этот рукописный текст. Сохраняй оригинальную орфографию и пунктуацию. Обозначай неразборчивые слова как [нрзб].",
			Difficulty: "Новичок",
			Helpful:    124,
			NotHelpful: 12,
		},
		{
			ID:         "p2",
			Title:      "Сложная скоропись (XVII-XVIII вв.)",
			Category:   model.CategoryTranscription,
			Text:       "Твоя задача — расшифровать древнерусский скорописный текст.\n1. Опиши особенности почерка.\n2. Дай пословную транскрипцию, раскрывая титла в круглых скобках.\n3. Дай перевод на современный русский язык.",
			Difficulty: "Эксперт",
			Helpful:    45,
			NotHelpful: 2,
		},
		{
			ID:         "p_restore_1",
			Title:      "Реставрация без артефактов",
			Category:   model.CategoryRestoration,
			Text:       "Восстанови повреждённую историческую фотографию: убери царапины, пятна и выцветание, сохрани текстуру кожи и детали эпохи. Не меняй композицию и не раскрашивай.",
			Difficulty: "Эксперт",
			Helpful:    89,
			NotHelpful: 4,
		},
		{
			ID:         "p_audio_1",
			Title:      "Интервью: Выделение спикеров",
			Category:   model.CategoryAudio,
			Text:       "Транскрибируй этот аудиофайл.\n- Разделяй реплики разных людей (Спикер 1, Спикер 2).\n- Проставляй таймкоды каждые 30 секунд.\n- Если слово неразборчиво, пиши [неразборчиво 00:00].",
			Difficulty: "Продвинутый",
			Helpful:    56,
			NotHelpful: 5,
		},
		{
			ID:         "p_trans_1",
			Title:      "Перевод метрик (Латынь/Польский)",
			Category:   model.CategoryTranslation,
			Text:       "Переведи запись акта гражданского состояния с [ЯЗЫК] на русский язык.\n1. Дата и место события.\n2. Основные участники.\n3. Свидетели.\n4. Полный перевод текста.",
			Difficulty: "Продвинутый",
			Helpful:    78,
			NotHelpful: 3,
		},
		{
			ID:         "p_id_1",
			Title:      "Анализ униформы и датировка",
			Category:   model.CategoryIdentification,
			Text:       "Проанализируй эту фотографию военного.\n1. Опиши форму.\n2. Определи род войск и примерное звание.\n3. Назови временной период съемки.\n4. Перечисли награды, если есть.",
			Difficulty: "Эксперт",
			Helpful:    112,
			NotHelpful: 8,
		},
		{
			ID:         "p_inf_1",
			Title:      "Генеалогия в Mermaid JS",
			Category:   model.CategoryInfographic,
			Text:       "Проанализируй текст и создай код диаграммы Mermaid JS (graph TD) для визуализации семейных связей. Добавь годы жизни в узлы, если они есть в тексте.",
			Difficulty: "Продвинутый",
			Helpful:    67,
			NotHelpful: 1,
		},
	}
}
