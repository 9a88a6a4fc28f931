package questionnaire

var categories = []Category{
	{ID: "unified", Label: Text{AR: "البند السلوكي المرتبط بالتوحد والموهبة الشاملة", EN: "Unified and Giftedness Related Behaviors"}, PlanName: "Unified"},
	{ID: "autism", Label: Text{AR: "البند السلوكي المرتبط بالتوحد والموهبة", EN: "Autism and Giftedness Related Behaviors"}, PlanName: "Autism"},
	{ID: "learning-difficulties", Label: Text{AR: "البند السلوكي المرتبط بصعوبات التعلم والموهبة", EN: "Learning Difficulties and Giftedness Related Behaviors"}, PlanName: "Learning-Disabilities"},
	{ID: "hearing-impairment", Label: Text{AR: "البند السلوكي المرتبط بالإعاقة السمعية والموهبة", EN: "Hearing Impairment and Giftedness Related Behaviors"}, PlanName: "Hearing-Impairment"},
	{ID: "visual-impairment", Label: Text{AR: "البند السلوكي المرتبط بالإعاقة البصرية والموهبة", EN: "Visual Impairment and Giftedness Related Behaviors"}, PlanName: "Visual-Impairment-Braille"},
	{ID: "intellectual-disability", Label: Text{AR: "البند السلوكي المرتبط بالإعاقة الفكرية والموهبة", EN: "Intellectual Disability and Giftedness Related Behaviors"}, PlanName: "Mild-Intellectual-Disability"},
	{ID: "adhd", Label: Text{AR: "البند السلوكي المرتبط بفرط الحركة وتشتت الانتباه والموهبة", EN: "ADHD and Giftedness Related Behaviors"}, PlanName: "ADHD"},
	{ID: "borderline-intelligence", Label: Text{AR: "البند السلوكي المرتبط بالذكاء الحدي والموهبة", EN: "Borderline Intelligence and Giftedness Related Behaviors"}, PlanName: "Borderline-Intelligence"},
	{ID: "multiple-disabilities", Label: Text{AR: "البند السلوكي المرتبط بالإعاقات المتعددة والموهبة", EN: "Multiple Disabilities and Giftedness Related Behaviors"}, PlanName: "Multiple-Disabilities"},
}

// Labels the storage API still accepts for categories no longer offered.
var legacyPlanNames = map[string]string{
	"physical-disability": "Physical-Disability",
}

var disabilityItems = map[string][]Text{
	"unified":                 unifiedItems,
	"autism":                  autismItems,
	"learning-difficulties":   learningDifficultiesItems,
	"hearing-impairment":      hearingImpairmentItems,
	"visual-impairment":       visualImpairmentItems,
	"intellectual-disability": intellectualDisabilityItems,
	"adhd":                    adhdItems,
	"borderline-intelligence": borderlineIntelligenceItems,
	"multiple-disabilities":   multipleDisabilitiesItems,
}

var autismItems = []Text{
	{
		AR: "يُظهر اهتمامًا مكثفًا ومتخصصًا بموضوع واحد ويجمع عنه معلومات دقيقة",
		EN: "Shows intense, specialized interest in one topic and gathers precise information about it",
	},
	{
		AR: "يلاحظ الأنماط والتفاصيل التي لا ينتبه لها الآخرون",
		EN: "Notices patterns and details that others overlook",
	},
	{
		AR: "يواجه صعوبة في فهم قواعد التفاعل الاجتماعي غير المكتوبة",
		EN: "Has difficulty understanding the unwritten rules of social interaction",
	},
	{
		AR: "يُظهر حساسية مرتفعة تجاه الأصوات أو الأضواء أو الملمس",
		EN: "Shows heightened sensitivity to sounds, lights or textures",
	},
	{
		AR: "يتمسك بالروتين ويتضايق من التغيير المفاجئ",
		EN: "Holds on to routines and is upset by sudden change",
	},
	{
		AR: "يمتلك ذاكرة استثنائية للحقائق أو الأرقام أو التواريخ",
		EN: "Has exceptional memory for facts, numbers or dates",
	},
	{
		AR: "يفضل العمل المنفرد ويجد صعوبة في الأنشطة الجماعية",
		EN: "Prefers working alone and finds group activities difficult",
	},
	{
		AR: "يستخدم لغة دقيقة أو رسمية بشكل غير معتاد لعمره",
		EN: "Uses unusually precise or formal language for their age",
	},
	{
		AR: "يتفوق في المهام المنطقية أو الرياضية أو التقنية",
		EN: "Excels in logical, mathematical or technical tasks",
	},
	{
		AR: "يجد صعوبة في التعبير عن مشاعره أو قراءة مشاعر الآخرين",
		EN: "Finds it difficult to express feelings or read the emotions of others",
	},
}

var unifiedItems = []Text{
	{
		AR: "يُظهر قدرات عالية في الحفظ أو التذكر التفصيلي لمعلومات محددة",
		EN: "Shows high abilities in memorization or detailed recall of specific information",
	},
	{
		AR: "يميل إلى الانخراط العميق في موضوعات محددة دون اهتمام بالمواضيع الأخرى",
		EN: "Tends to deeply engage in specific topics without interest in other subjects",
	},
	{
		AR: "يفضل الأنشطة الفردية على الجماعية، ويواجه صعوبة في التفاعل الاجتماعي",
		EN: "Prefers individual over group activities, has difficulty with social interaction",
	},
	{
		AR: "يفكر بطريقة غير تقليدية، ويقترح حلولًا مبتكرة لمشكلات معقدة",
		EN: "Thinks unconventionally and suggests innovative solutions to complex problems",
	},
	{
		AR: "يُظهر اهتمامًا شديدًا بالتفاصيل الدقيقة أو الأنماط المتكررة",
		EN: "Shows intense interest in fine details or repetitive patterns",
	},
	{
		AR: "يعاني من صعوبة في تفسير الإشارات الاجتماعية أو التعبير عن مشاعره",
		EN: "Has difficulty interpreting social cues or expressing emotions",
	},
	{
		AR: "يتضايق من التغييرات المفاجئة أو الخروج عن الروتين",
		EN: "Gets upset by sudden changes or deviations from routine",
	},
	{
		AR: "يميل إلى التواصل غير اللفظي (مثل الرسم أو الكتابة) أكثر من الكلام المباشر",
		EN: "Tends toward non-verbal communication (like drawing or writing) more than direct speech",
	},
	{
		AR: "يتفاعل بشكل غير متوقع في المواقف الاجتماعية، رغم نضجه العقلي",
		EN: "Reacts unexpectedly in social situations despite mental maturity",
	},
	{
		AR: "يُظهر اهتمامًا مبكرًا بالقراءة أو المفاهيم المجردة",
		EN: "Shows early interest in reading or abstract concepts",
	},
}

var learningDifficultiesItems = []Text{
	{
		AR: "يُظهر فهمًا عاليًا للمفاهيم المجردة رغم ضعف الأداء في القراءة أو الإملاء",
		EN: "Shows high understanding of abstract concepts despite weak reading or spelling performance",
	},
	{
		AR: "يمتلك مفردات غنية عند التحدث، لكنه يواجه صعوبات في التعبير الكتابي",
		EN: "Has rich vocabulary when speaking but faces difficulties in written expression",
	},
	{
		AR: "يتفاعل بشكل مميز في النقاشات الشفهية لكنه يتجنب القراءة الجهرية",
		EN: "Interacts distinctively in oral discussions but avoids reading aloud",
	},
	{
		AR: "يظهر أداء ممتازًا عند تنفيذ المهام الشفوية أو العملية مقارنة بالكتابية",
		EN: "Shows excellent performance in oral or practical tasks compared to written ones",
	},
	{
		AR: "يعاني من صعوبة في تنظيم الأفكار أثناء الكتابة رغم وضوحها في المناقشة",
		EN: "Has difficulty organizing thoughts during writing despite their clarity in discussion",
	},
	{
		AR: "يتضايق من المهام التي تتطلب كتابة طويلة، ويفضل العرض الشفهي أو المرئي",
		EN: "Gets frustrated with tasks requiring lengthy writing, prefers oral or visual presentation",
	},
	{
		AR: "يخطئ في الإملاء رغم تكرار التدريب والممارسة",
		EN: "Makes spelling errors despite repeated training and practice",
	},
	{
		AR: "يفهم التعليمات عند شرحها له شفهيًا، لكنه لا يتبع التعليمات المكتوبة بسهولة",
		EN: "Understands instructions when explained orally but doesn't easily follow written instructions",
	},
	{
		AR: "يتمتع بقدرات تحليلية أو منطقية قوية، لكنه يعاني من بطء في إنجاز المهام الورقية",
		EN: "Has strong analytical or logical abilities but struggles with slow completion of paper tasks",
	},
	{
		AR: "يشعر بالإحباط أو تدني الثقة بالنفس بسبب ضعف الأداء الأكاديمي رغم الموهبة",
		EN: "Feels frustrated or has low self-confidence due to weak academic performance despite giftedness",
	},
}

var hearingImpairmentItems = []Text{
	{
		AR: "يُظهر قدرات سمعية متقدمة في التعلم والاستيعاب",
		EN: "Shows advanced auditory abilities in learning and comprehension",
	},
	{
		AR: "يتفوق في المهام اللفظية والحوارات المعقدة",
		EN: "Excels in verbal tasks and complex dialogues",
	},
	{
		AR: "يمتلك مهارات استماع عالية ويلتقط التفاصيل الصوتية بدقة",
		EN: "Has high listening skills and captures audio details accurately",
	},
	{
		AR: "يُظهر ذاكرة سمعية قوية ويحفظ المعلومات المنطوقة بسهولة",
		EN: "Shows strong auditory memory and memorizes spoken information easily",
	},
	{
		AR: "يتميز في الأنشطة الموسيقية أو الأدبية أو اللغوية",
		EN: "Excels in musical, literary, or linguistic activities",
	},
	{
		AR: "يعبر عن أفكاره بطلاقة ووضوح شفهيًا",
		EN: "Expresses thoughts fluently and clearly orally",
	},
	{
		AR: "يستخدم حواسه الأخرى (اللمس والشم) بشكل إبداعي للتعلم",
		EN: "Uses other senses (touch and smell) creatively for learning",
	},
	{
		AR: "يُظهر تركيزًا عاليًا في البيئات الهادئة المناسبة للاستماع",
		EN: "Shows high concentration in quiet environments suitable for listening",
	},
	{
		AR: "يتفاعل إيجابيًا مع التقنيات المساعدة والمواد الصوتية",
		EN: "Responds positively to assistive technologies and audio materials",
	},
	{
		AR: "يعاني من الإحباط عند عدم توفر المواد التعليمية بتنسيقات يمكن الوصول إليها",
		EN: "Gets frustrated when educational materials are not available in accessible formats",
	},
}

var visualImpairmentItems = []Text{
	{
		AR: "يُظهر قدرات بصرية عالية في التعلم والفهم",
		EN: "Shows high visual abilities in learning and understanding",
	},
	{
		AR: "يتفوق في المهام التي تعتمد على الملاحظة البصرية والتفاصيل",
		EN: "Excels in tasks that rely on visual observation and details",
	},
	{
		AR: "يستخدم الإشارات أو الرسوم للتعبير عن أفكار معقدة بوضوح",
		EN: "Uses gestures or drawings to express complex ideas clearly",
	},
	{
		AR: "يُظهر فهمًا عميقًا للمفاهيم المجردة عند عرضها بصريًا",
		EN: "Shows deep understanding of abstract concepts when presented visually",
	},
	{
		AR: "يميل إلى التركيز الشديد على المهام البصرية لفترات طويلة",
		EN: "Tends to focus intensely on visual tasks for long periods",
	},
	{
		AR: "يبدع في الأنشطة الفنية أو التصميمية أو التكنولوجية",
		EN: "Excels in artistic, design, or technological activities",
	},
	{
		AR: "يتفاعل إيجابيًا مع التعلم التفاعلي والألعاب التعليمية البصرية",
		EN: "Responds positively to interactive learning and visual educational games",
	},
	{
		AR: "يُظهر مهارات قوية في حل المشكلات عند استخدام الأدوات البصرية",
		EN: "Shows strong problem-solving skills when using visual tools",
	},
	{
		AR: "يعبر عن الإحباط عندما تكون المعلومات غير مصحوبة بدعم بصري",
		EN: "Expresses frustration when information is not accompanied by visual support",
	},
	{
		AR: "يتميز بذاكرة بصرية قوية ويتذكر التفاصيل البصرية بدقة",
		EN: "Has strong visual memory and remembers visual details accurately",
	},
}

var intellectualDisabilityItems = []Text{
	{
		AR: "يُظهر مهارات خاصة في مجالات محددة رغم التأخر العام في التطور",
		EN: "Shows special skills in specific areas despite general developmental delay",
	},
	{
		AR: "يتعلم بطريقة أفضل عند استخدام طرق تدريس مبسطة ومتدرجة",
		EN: "Learns better when using simplified and gradual teaching methods",
	},
	{
		AR: "يُظهر قدرة على الإبداع في المجالات العملية أو الفنية",
		EN: "Shows ability for creativity in practical or artistic fields",
	},
	{
		AR: "يحتاج لوقت إضافي لمعالجة المعلومات ولكنه يصل لنتائج مدهشة أحيانًا",
		EN: "Needs extra time to process information but sometimes reaches amazing results",
	},
	{
		AR: "يستجيب بشكل إيجابي للتعزيز والتشجيع المستمر",
		EN: "Responds positively to continuous reinforcement and encouragement",
	},
	{
		AR: "يُظهر مثابرة عالية في المهام التي يجدها ممتعة أو ذات معنى",
		EN: "Shows high persistence in tasks that are enjoyable or meaningful to them",
	},
	{
		AR: "يتفاعل جيدًا في البيئات التعليمية الداعمة وغير المهددة",
		EN: "Interacts well in supportive and non-threatening educational environments",
	},
	{
		AR: "يُظهر تحسنًا ملحوظًا عند تلقي التدريب المخصص لاحتياجاته",
		EN: "Shows noticeable improvement when receiving training tailored to their needs",
	},
	{
		AR: "يميل إلى التعلم من خلال التجربة المباشرة والأنشطة العملية",
		EN: "Tends to learn through direct experience and hands-on activities",
	},
	{
		AR: "يعبر عن إحباطه عند مواجهة توقعات غير واقعية أو مهام معقدة جداً",
		EN: "Expresses frustration when facing unrealistic expectations or overly complex tasks",
	},
}

var adhdItems = []Text{
	{
		AR: "يُظهر طاقة عالية وحماسًا في المجالات التي يهتم بها",
		EN: "Shows high energy and enthusiasm in areas of interest",
	},
	{
		AR: "يتفوق في المهام التي تتطلب تفكيرًا سريعًا وحلولًا إبداعية",
		EN: "Excels in tasks requiring quick thinking and creative solutions",
	},
	{
		AR: "يُظهر قدرة على التركيز العميق عندما يكون الموضوع مثيرًا لاهتمامه",
		EN: "Shows ability for deep focus when the subject is of interest to them",
	},
	{
		AR: "يميل إلى تعدد المهام ويمكنه إدارة عدة أنشطة في وقت واحد",
		EN: "Tends to multitask and can manage several activities at once",
	},
	{
		AR: "يبدع في البيئات التعليمية النشطة والتفاعلية",
		EN: "Excels in active and interactive learning environments",
	},
	{
		AR: "يُظهر مرونة في التفكير وقدرة على الانتقال بين الأفكار بسرعة",
		EN: "Shows flexibility in thinking and ability to shift between ideas quickly",
	},
	{
		AR: "يتضايق من المهام الروتينية أو المتكررة ويفضل التحديات الجديدة",
		EN: "Gets frustrated with routine or repetitive tasks and prefers new challenges",
	},
	{
		AR: "يحتاج إلى فترات راحة منتظمة أو تغيير في الأنشطة للحفاظ على التركيز",
		EN: "Needs regular breaks or activity changes to maintain focus",
	},
	{
		AR: "يتفاعل إيجابيًا مع الأنشطة التي تشمل الحركة أو التطبيق العملي",
		EN: "Responds positively to activities that include movement or practical application",
	},
	{
		AR: "يُظهر قدرة على التفكير خارج الصندوق وإيجاد حلول غير تقليدية",
		EN: "Shows ability to think outside the box and find unconventional solutions",
	},
}

var borderlineIntelligenceItems = []Text{
	{
		AR: "يُظهر أداءً متقلبًا، قد يتفوق في بعض المهام ويواجه صعوبة في أخرى",
		EN: "Shows fluctuating performance, may excel in some tasks while struggling in others",
	},
	{
		AR: "يتعلم بشكل أفضل عندما تُقدم المعلومات بطريقة ملموسة ومرئية",
		EN: "Learns better when information is presented in concrete and visual ways",
	},
	{
		AR: "يُظهر مهارات عملية قوية في الأنشطة اليومية أو المهنية",
		EN: "Shows strong practical skills in daily or vocational activities",
	},
	{
		AR: "يحتاج لوقت إضافي لمعالجة المعلومات المعقدة ولكنه قادر على الفهم",
		EN: "Needs extra time to process complex information but is capable of understanding",
	},
	{
		AR: "يستفيد من التكرار والممارسة المنتظمة لإتقان المهارات",
		EN: "Benefits from repetition and regular practice to master skills",
	},
	{
		AR: "يُظهر حماسًا وإبداعًا في الأنشطة التي تناسب قدراته",
		EN: "Shows enthusiasm and creativity in activities that match their abilities",
	},
	{
		AR: "يتفاعل جيدًا مع التوجيه والدعم الفردي المخصص",
		EN: "Responds well to individualized guidance and support",
	},
	{
		AR: "يميل إلى الأداء الأفضل في البيئات التعليمية الهادئة وغير المضغوطة",
		EN: "Tends to perform better in calm and pressure-free educational environments",
	},
	{
		AR: "يُظهر قدرة على التعلم الاجتماعي والاستفادة من النماذج والقدوة",
		EN: "Shows ability for social learning and benefiting from models and role models",
	},
	{
		AR: "يشعر بالإحباط عندما تكون التوقعات عالية جداً أو عندما يُقارن بأقرانه",
		EN: "Feels frustrated when expectations are too high or when compared to peers",
	},
}

var multipleDisabilitiesItems = []Text{
	{
		AR: "يُظهر قدرات مميزة في مجال واحد أو أكثر رغم وجود إعاقات متعددة",
		EN: "Shows distinctive abilities in one or more areas despite having multiple disabilities",
	},
	{
		AR: "يتكيف مع التقنيات المساعدة المتنوعة ويستفيد منها بطريقة إبداعية",
		EN: "Adapts to various assistive technologies and uses them creatively",
	},
	{
		AR: "يستجيب بشكل إيجابي للتعلم متعدد الحواس والطرق المتنوعة",
		EN: "Responds positively to multisensory learning and diverse methods",
	},
	{
		AR: "يُظهر عزيمة قوية ومثابرة في التغلب على التحديات اليومية",
		EN: "Shows strong determination and persistence in overcoming daily challenges",
	},
	{
		AR: "يتفاعل بشكل مميز مع الأنشطة المصممة خصيصًا لاحتياجاته المتعددة",
		EN: "Interacts distinctively with activities specifically designed for their multiple needs",
	},
	{
		AR: "يُظهر تحسنًا ملحوظًا عند تلقي خدمات شاملة ومتكاملة",
		EN: "Shows noticeable improvement when receiving comprehensive and integrated services",
	},
	{
		AR: "يميل إلى التعبير عن ذاته بطرق غير تقليدية ولكنها فعالة",
		EN: "Tends to express themselves in unconventional but effective ways",
	},
	{
		AR: "يحتاج إلى بيئة تعليمية عالية التخصص ومرونة في التوقعات",
		EN: "Needs a highly specialized educational environment and flexibility in expectations",
	},
	{
		AR: "يستفيد من العمل مع فريق متعدد التخصصات لدعم تطوره الشامل",
		EN: "Benefits from working with a multidisciplinary team to support comprehensive development",
	},
	{
		AR: "يُظهر تقدمًا بطيئًا ولكنه مستمر في المهارات التي يتم التركيز عليها",
		EN: "Shows slow but consistent progress in skills that are focused upon",
	},
}
