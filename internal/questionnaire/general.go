package questionnaire

var teacherGeneral = []Text{
	{
		AR: "يُظهر تباينًا ملحوظًا بين الأداء الأكاديمي والقدرات المعرفية",
		EN: "Shows noticeable variation between academic performance and cognitive abilities",
	},
	{
		AR: "لديه اهتمامات متقدمة أو غير معتادة في مجالات محددة",
		EN: "Has advanced or unusual interests in specific areas",
	},
	{
		AR: "يطرح أسئلة عميقة أو غير تقليدية تدل على تفكير نقدي",
		EN: "Asks deep or unconventional questions showing critical thinking",
	},
	{
		AR: "يعاني من صعوبات في المهارات الأساسية رغم أدائه العالي في مهارات أخرى",
		EN: "Struggles with basic skills despite high performance in other skills",
	},
	{
		AR: "يُظهر مشاعر الإحباط أو تدني احترام الذات بسبب الفجوة بين قدراته وأدائه",
		EN: "Shows frustration or low self-esteem due to gap between abilities and performance",
	},
	{
		AR: "يعمل بشكل أفضل عند منحه وقتًا إضافيًا أو دعمًا مخصصًا",
		EN: "Works better when given extra time or specialized support",
	},
	{
		AR: "يتفاعل بشكل إيجابي مع الأنشطة الإبداعية أو الاستكشافية",
		EN: "Responds positively to creative or exploratory activities",
	},
	{
		AR: "يميل إلى العزلة أو الانسحاب في البيئات غير الداعمة",
		EN: "Tends to isolate or withdraw in unsupportive environments",
	},
	{
		AR: "يعاني من صعوبة في تنظيم المهام أو تتبع التعليمات المتعددة",
		EN: "Has difficulty organizing tasks or following multiple instructions",
	},
	{
		AR: "يظهر أداء غير متوازن بين التقييمات الشفهية والتحريرية",
		EN: "Shows unbalanced performance between oral and written assessments",
	},
}

var parentGeneral = []Text{
	{AR: "يُظهر مفردات متقدمة لعمره", EN: "Shows advanced vocabulary for their age"},
	{AR: "يُظهر قدرات استثنائية في حل المشكلات", EN: "Demonstrates exceptional problem-solving abilities"},
	{AR: "يواجه صعوبة في التفاعلات الاجتماعية", EN: "Has difficulty with social interactions"},
	{AR: "يُظهر تركيزاً مكثفاً على اهتمامات محددة", EN: "Shows intense focus on specific interests"},
	{AR: "يُظهر حساسية عاطفية أو ردود فعل مفرطة", EN: "Exhibits emotional sensitivity or overreactions"},
	{AR: "يواجه صعوبة في تنظيم المهام أو الأنشطة", EN: "Has trouble organizing tasks or activities"},
	{AR: "يُظهر تفكيراً إبداعياً أو خيالياً", EN: "Shows creative or imaginative thinking"},
	{AR: "يواجه صعوبة في اتباع التعليمات متعددة الخطوات", EN: "Has difficulty following multi-step instructions"},
	{AR: "يُظهر مهارات استدلال متقدمة", EN: "Demonstrates advanced reasoning skills"},
	{AR: "يعاني من مشاكل في الانتباه أو التركيز", EN: "Struggles with attention or focus"},
	{AR: "يُظهر ذاكرة استثنائية في مجالات الاهتمام", EN: "Shows exceptional memory in areas of interest"},
	{AR: "يواجه صعوبة في الكتابة أو المهارات الحركية الدقيقة", EN: "Has difficulty with handwriting or fine motor skills"},
	{AR: "يُظهر فهماً متقدماً للمفاهيم المعقدة", EN: "Demonstrates advanced understanding of complex concepts"},
	{AR: "يُظهر سلوكيات متكررة أو روتين جامد", EN: "Shows repetitive behaviors or rigid routines"},
	{AR: "يُظهر نزعات كمالية", EN: "Exhibits perfectionist tendencies"},
}
